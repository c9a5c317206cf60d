package bulletinv1connect

import (
	"encoding/json"
	"fmt"
)

// Codec marshals bulletin messages as JSON. It registers under the "json"
// name so that both the Connect protocol and gRPC-Web JSON clients can use it.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func errUnimplemented(method string) error {
	return fmt.Errorf("%s.%s is not implemented", BulletinServiceName, method)
}
