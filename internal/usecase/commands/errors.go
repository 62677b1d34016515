package commands

import "shareit/internal/infra"

// users.email is the only unique key a command can hit.
func isDuplicate(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}
