package memory

import "context"

type teamImageRepository struct {
	filenames map[string]string
}

func NewTeamImageRepository(filenames map[string]string) *teamImageRepository {
	if filenames == nil {
		filenames = map[string]string{}
	}
	return &teamImageRepository{filenames: filenames}
}

func (r *teamImageRepository) GetFilename(_ context.Context, team string) (string, bool) {
	name, ok := r.filenames[team]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func (r *teamImageRepository) Count() int {
	return len(r.filenames)
}
