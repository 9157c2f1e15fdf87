package cities

import (
	"io"

	"github.com/goccy/go-json"
)

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
