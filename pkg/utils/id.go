package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// IDLength cabe na coluna VARCHAR(21) de forst_report_snapshots
	IDLength = 12
)

// GenerateID gera ids curtos para os snapshots de relatório
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, IDLength)
}
