package schema

// ObjektTable represents the 'objekt' table
type ObjektTable struct {
	Table        string
	ID           string
	CollectionID string
	Owner        string
	Serial       string
	Transferable string
	UsedForGrid  string
	MintedAt     string
	ReceivedAt   string
}

// Objekt is the schema definition for objekt
var Objekt = ObjektTable{
	Table:        "objekt",
	ID:           "id",
	CollectionID: "collection_id",
	Owner:        "owner",
	Serial:       "serial",
	Transferable: "transferable",
	UsedForGrid:  "used_for_grid",
	MintedAt:     "minted_at",
	ReceivedAt:   "received_at",
}

// Columns lists the selectable columns in scan order.
func (t ObjektTable) Columns() []string {
	return []string{
		t.ID, t.CollectionID, t.Owner, t.Serial, t.Transferable, t.UsedForGrid, t.MintedAt, t.ReceivedAt,
	}
}
