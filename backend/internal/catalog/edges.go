package catalog

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	apperrors "latticework/backend/pkg/errors"
	"latticework/backend/pkg/logger"
)

// crosslinksDoc mirrors the on-disk cross-link document
type crosslinksDoc struct {
	Crosslinks []Edge `json:"crosslinks"`
}

// LoadEdges reads the cross-link document at path. A missing document
// quietly disables relationship features; a document that exists but
// cannot be decoded is a hard error, because silently dropping a
// hand-maintained file would hide real mistakes.
func LoadEdges(path string) ([]Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Get().Debug("no cross-link document",
				zap.String("path", path),
			)
			return []Edge{}, nil
		}
		return nil, apperrors.NewCrosslinksMalformed(path, err)
	}

	var doc crosslinksDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewCrosslinksMalformed(path, err)
	}

	if doc.Crosslinks == nil {
		// Present but keyless still counts as no cross-links
		return []Edge{}, nil
	}
	return doc.Crosslinks, nil
}
