package schema

// TransferTable represents the 'transfer' table
type TransferTable struct {
	Table     string
	ID        string
	ObjektID  string
	From      string
	To        string
	Hash      string
	Timestamp string
}

// Transfer is the schema definition for transfer
var Transfer = TransferTable{
	Table:     "transfer",
	ID:        "id",
	ObjektID:  "objekt_id",
	From:      "from_addr",
	To:        "to_addr",
	Hash:      "hash",
	Timestamp: "timestamp",
}
