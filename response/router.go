package response

//easyjson:json
type ID struct {
	ID string `json:"id"`
}

//easyjson:json
type Error struct {
	ID    string `json:"id"`
	Error *Err   `json:"error"`
}

type Err struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

//easyjson:json
type Pairs struct {
	ID    string  `json:"id"`
	Pairs []*Pair `json:"pairs"`
}

type Pair struct {
	BaseCurrency  string `json:"baseCurrency"`
	QuoteCurrency string `json:"quoteCurrency"`
	Price         string `json:"price"`
	State         int    `json:"state"`
}

//easyjson:json
type Balance struct {
	ID    string `json:"id"`
	Asset string `json:"asset"`
	Total string `json:"total"`
}

// Operation is a state-changing request arriving on the gateway stream.
//easyjson:json
type Operation struct {
	ID           string `json:"id"`
	Op           string `json:"op"`
	OperationID  string `json:"operation_id"`
	Principal    string `json:"principal"`
	Asset        string `json:"asset"`
	Amount       string `json:"amount"`
	MinAmountOut string `json:"min_amount_out"`
	NativeValue  string `json:"native_value"`
	Destination  string `json:"destination"`
	Actor        string `json:"actor"`
}
