package snake

import "errors"

// memStore is an in-memory HighScoreStore.
type memStore struct {
	score   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	return nil
}

var errDisk = errors.New("disk on fire")
