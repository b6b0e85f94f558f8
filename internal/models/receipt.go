package models

// ReceiptFile is the payment proof uploaded during checkout.
type ReceiptFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Empty reports whether no file was provided.
func (f *ReceiptFile) Empty() bool {
	return f == nil || len(f.Data) == 0
}

// ReceiptAnalysis is what the verification collaborator reports about a receipt.
type ReceiptAnalysis struct {
	IsValid        bool   `json:"isValid"`
	Summary        string `json:"summary"`
	DetectedAmount string `json:"detectedAmount,omitempty"`
}
