package domain

// EntityStatus é o ciclo de vida compartilhado por campanhas, ad groups,
// keywords e anúncios. Entidades nunca são removidas fisicamente: REMOVED
// é um estado terminal, o que garante que a resolução de hierarquia de
// fatos históricos sempre encontra o pai.
type EntityStatus string

const (
	StatusEnabled EntityStatus = "ENABLED"
	StatusPaused  EntityStatus = "PAUSED"
	StatusRemoved EntityStatus = "REMOVED"
)

func (s EntityStatus) Valid() bool {
	switch s {
	case StatusEnabled, StatusPaused, StatusRemoved:
		return true
	}
	return false
}
