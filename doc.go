/*
Package tokenlock defines all common interfaces that tie the extension
packages of this repository together, as well as implementations of some
of the simpler components (when interfaces would be too much overhead).

We pass context through context.Context between handlers and the test
harness. To do so, tokenlock defines some common keys to store info, such
as block height and chain id. Each extension, such as auth, may add its
own keys to enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may error/panic if the value was previously set to avoid
lower-level modules overwriting the value (eg. height, chain id).
*/
package tokenlock
