package request

//easyjson:json
type Auth struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	APIKey   string `json:"apiKey"`
	Password string `json:"password"`
}

//easyjson:json
type Subscribe struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// AuthorizeSpend bounds how much of an asset the router may pull from
// custody. An amount of "0" revokes the authorization.
//easyjson:json
type AuthorizeSpend struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

//easyjson:json
type ExecuteSwap struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	AmountIn     string   `json:"amount_in"`
	MinAmountOut string   `json:"min_amount_out"`
	Route        []string `json:"route"`
	Recipient    string   `json:"recipient"`
	Deadline     int64    `json:"deadline"`
	ExternalID   string   `json:"externalId,omitempty"`
}

//easyjson:json
type GetCustodyBalance struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Asset string `json:"asset"`
}

//easyjson:json
type Transfer struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Asset      string `json:"asset"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Amount     string `json:"amount"`
	ExternalID string `json:"externalId,omitempty"`
}

//easyjson:json
type OperationResult struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	OperationID string `json:"operation_id"`
	Status      string `json:"status"`
	AmountIn    string `json:"amount_in,omitempty"`
	AmountOut   string `json:"amount_out,omitempty"`
	Reason      string `json:"reason,omitempty"`
}
