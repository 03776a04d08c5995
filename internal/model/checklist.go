package model

// A Checklist represents a database record and the rendered API response.
type Checklist struct {
	Base `msgpack:",inline" storm:"inline"`

	Name string `json:"name" msgpack:"name"`
}
