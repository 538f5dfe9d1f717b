package strategy

import "github.com/arloliu/xcbalance/types"

// ErrNoRanks indicates that the ledger has no ranks to assign to.
var ErrNoRanks = types.ErrNoRanks
