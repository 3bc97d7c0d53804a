package repository

import "testing"

func TestDatasetMemoryRepository(t *testing.T) {
	runDatasetStoreContract(t, NewDatasetMemoryRepository())
}
