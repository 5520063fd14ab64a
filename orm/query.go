package orm

import "github.com/iov-one/tokenlock"

// queryPrefix reads all key-value pairs stored under given prefix.
func queryPrefix(db tokenlock.ReadOnlyKVStore, prefix []byte) ([]tokenlock.Model, error) {
	itr, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and increment the last byte. On overflow drop that
	// byte and increment the one before it.
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for l := len(end) - 1; l >= 0; l-- {
		end[l]++
		if end[l] != 0 {
			return prefix, end[:l+1]
		}
	}
	// prefix is all 0xff, no end to this range
	return prefix, nil
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr tokenlock.Iterator) ([]tokenlock.Model, error) {
	defer itr.Close()

	res := []tokenlock.Model{}
	for itr.Valid() {
		mod := tokenlock.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
