package model

// A ChecklistItem represents a database record and the rendered API response.
// Items are always addressed by the (ChecklistID, ID) pair.
type ChecklistItem struct {
	Base `msgpack:",inline" storm:"inline"`

	ChecklistID int    `json:"checklistId" msgpack:"checklist_id" storm:"index"`
	ItemName    string `json:"itemName"    msgpack:"item_name"`
	Status      bool   `json:"status"      msgpack:"status"`
}
