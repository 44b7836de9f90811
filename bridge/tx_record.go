package bridge

import "sync"

// TxRecord keeps the hash of the most recently accepted submission. It is a
// single slot: a new submission overwrites the previous hash.
type TxRecord struct {
	lock   sync.RWMutex
	txHash string
}

func (r *TxRecord) Set(txHash string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.txHash = txHash
}

func (r *TxRecord) Latest() string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.txHash
}
