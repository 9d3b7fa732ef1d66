package storage

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"github.com/soulgarden/vaultd/dictionary"
)

// DumpLedger carries ledger state across restarts.
type DumpLedger struct {
	ledger *Ledger

	Balances    map[string]decimal.Decimal `json:"balances"`
	Locked      decimal.Decimal            `json:"locked"`
	Deposits    uint64                     `json:"deposits"`
	Withdrawals uint64                     `json:"withdrawals"`
}

func NewDumpLedger(ledger *Ledger) *DumpLedger {
	return &DumpLedger{ledger: ledger}
}

func (d *DumpLedger) Dump(path string) error {
	d.ledger.mx.RLock()

	d.Balances = make(map[string]decimal.Decimal, len(d.ledger.balances))
	for principal, balance := range d.ledger.balances {
		d.Balances[principal] = balance
	}

	d.Locked = d.ledger.locked
	d.Deposits = d.ledger.Deposits.Load()
	d.Withdrawals = d.ledger.Withdrawals.Load()

	d.ledger.mx.RUnlock()

	marshalled, err := json.Marshal(d)
	if err != nil {
		return err
	}

	return os.WriteFile(path, marshalled, dictionary.DumpFilePermissions)
}

func (d *DumpLedger) Recover(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, d); err != nil {
		return err
	}

	d.ledger.mx.Lock()
	defer d.ledger.mx.Unlock()

	d.ledger.balances = make(map[string]decimal.Decimal, len(d.Balances))
	for principal, balance := range d.Balances {
		d.ledger.balances[principal] = balance
	}

	d.ledger.locked = d.Locked
	d.ledger.Deposits.Store(d.Deposits)
	d.ledger.Withdrawals.Store(d.Withdrawals)

	return nil
}
