/*
Package cash defines a simple implementation of sending coins
between wallets.

There is no logic in the coins, beyond the rules of arithmetic and
they cannot be negative. The main purpose is to serve as the token
ledger other extensions settle against.

Sending money is the most basic feature and the SendMsg handler is
registered under cash/send. The Controller interface exposes balance
lookups and coin movement to other extensions, so they never touch
the wallet bucket directly.
*/
package cash
