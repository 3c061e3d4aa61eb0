package badger

import (
	"fmt"

	"github.com/poiesic/nyaya/core"
)

// Key prefixes for different data types
const (
	documentPrefix   = "lexdoc"
	checkpointPrefix = "chkpt"
)

// makeDocumentKey generates a key for a document by namespace and ID.
func makeDocumentKey(ns core.Namespace, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", documentPrefix, ns, id))
}

// makeNamespacePrefix generates the key prefix shared by every document in a
// namespace. Document IDs are fixed-length hex, so plain string keys sort
// deterministically within the prefix.
func makeNamespacePrefix(ns core.Namespace) []byte {
	return []byte(fmt.Sprintf("%s:%s:", documentPrefix, ns))
}

// makeCheckpointKey generates a key for job checkpoints.
func makeCheckpointKey(job string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointPrefix, job))
}
