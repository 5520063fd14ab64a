/*
Package timelock implements a token timelock.

A token lock holds funds together with a beneficiary address and a
release time. Until the release time is reached the funds cannot be
moved. Once the release time has passed anyone can trigger the release
and the full lock balance is paid out to whoever is the beneficiary at
that moment.

The beneficiary can transfer the claim to another address at any time,
before or after the release time.

The lock funds are kept in a cash wallet owned by the lock account
address, so the usual wallet queries can be used to inspect the
remaining balance.
*/
package timelock
