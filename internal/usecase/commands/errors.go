package commands

import (
	"marketplace-api/internal/infra"
)

// asNotFound swaps a repository NOT_FOUND for the domain error callers expect.
func asNotFound(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

func isDuplicate(err error) bool {
	return infra.IsKind(err, infra.KindDuplicateKey)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
