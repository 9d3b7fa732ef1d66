package request

type Msg struct {
	Type    int
	Payload []byte
}
