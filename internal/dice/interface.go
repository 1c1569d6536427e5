package dice

// Roller samples values from a face set
//
//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/polydice/internal/dice Roller
type Roller interface {
	// RollUniform draws one face, each equally likely
	RollUniform(faces FaceSet) (int, error)

	// RollBiased draws n faces whose sum is steered toward target*n
	RollBiased(faces FaceSet, n, target int) ([]int, error)
}
