package conf

import (
	"fmt"
	"os"

	"github.com/jinzhu/configor"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/soulgarden/vaultd/dictionary"
)

type Vault struct {
	WithdrawLimit  string `json:"withdraw_limit"  required:"true"`
	BankCap        string `json:"bank_cap"        required:"true"`
	ReferenceAsset string `json:"reference_asset" required:"true"`
	BridgeAsset    string `json:"bridge_asset"    required:"true"`
	CustodyAccount string `json:"custody_account" required:"true"`

	Router struct {
		APIKey     string `json:"api_key"      required:"true"`
		APIKeyPass string `json:"api_key_pass" required:"true"`

		DefaultAddr string `json:"default_addr" default:"gate.router.example.com"`
		Scheme      string `json:"scheme"       default:"wss"`
	} `json:"router"`

	Operators []string `json:"operators"`
	Pausers   []string `json:"pausers"`
	Admins    []string `json:"admins"`

	Telegram struct {
		Token  string `json:"token"`
		ChatID int64  `json:"chat_id"`
	} `json:"telegram"`

	Env           string `json:"env"`
	StateDumpPath string `json:"state_dump_path" default:"./storage/%s.vault.state.json"`

	Debug bool `json:"debug"`
}

func New() *Vault {
	c := &Vault{}
	path := os.Getenv("CFG_PATH")

	if path == "" {
		path = "./conf/conf.json"
	}

	if err := configor.New(&configor.Config{ErrorOnUnmatchedKeys: true}).Load(c, path); err != nil {
		log.Fatal().Err(err).Msg("conf validation errors")
	}

	return c
}

// ParseLimits validates the construction surface and returns the withdraw
// limit and bank cap as decimals. Both must parse and be positive.
func (c *Vault) ParseLimits() (limit, bankCap decimal.Decimal, err error) {
	limit, err = decimal.NewFromString(c.WithdrawLimit)
	if err != nil {
		return limit, bankCap, fmt.Errorf("%w: withdraw_limit %q", dictionary.ErrInvalidParameter, c.WithdrawLimit)
	}

	bankCap, err = decimal.NewFromString(c.BankCap)
	if err != nil {
		return limit, bankCap, fmt.Errorf("%w: bank_cap %q", dictionary.ErrInvalidParameter, c.BankCap)
	}

	if !limit.IsPositive() {
		return limit, bankCap, fmt.Errorf("%w: withdraw_limit must be positive", dictionary.ErrInvalidParameter)
	}

	if !bankCap.IsPositive() {
		return limit, bankCap, fmt.Errorf("%w: bank_cap must be positive", dictionary.ErrInvalidParameter)
	}

	return limit, bankCap, nil
}
