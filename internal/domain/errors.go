package domain

import "errors"

// Domain errors.
var (
	ErrInvalidShape     = errors.New("arborescence de traduction invalide: objet JSON de chaînes attendu, tableaux interdits")
	ErrProviderShape    = errors.New("réponse du fournisseur de traduction incohérente avec la charge envoyée")
	ErrQuotaExceeded    = errors.New("quota de caractères insuffisant pour cette synchronisation")
	ErrUnknownFormality = errors.New("formalité inconnue (valeurs acceptées: default, more, less)")
	ErrNoSourceFile     = errors.New("fichier de langue source introuvable")
	ErrUnknownLanguage  = errors.New("code de langue invalide")
)
