package orm

import (
	"bytes"
	"testing"
)

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix    []byte
		wantStart []byte
		wantEnd   []byte
	}{
		"normal":               {[]byte{1, 3, 4}, []byte{1, 3, 4}, []byte{1, 3, 5}},
		"empty prefix":         {nil, nil, nil},
		"trailing 0xff":        {[]byte{1, 3, 255}, []byte{1, 3, 255}, []byte{1, 4}},
		"only 0xff":            {[]byte{255, 255}, []byte{255, 255}, nil},
		"overflow in the middle": {[]byte{5, 255, 255}, []byte{5, 255, 255}, []byte{6}},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			if !bytes.Equal(start, tc.wantStart) {
				t.Errorf("want start %X, got %X", tc.wantStart, start)
			}
			if !bytes.Equal(end, tc.wantEnd) {
				t.Errorf("want end %X, got %X", tc.wantEnd, end)
			}
		})
	}
}
