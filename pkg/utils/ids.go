package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera o sufixo curto que distingue artefatos de execuções
// agendadas do mesmo período
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
