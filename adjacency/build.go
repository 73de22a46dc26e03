package adjacency

import (
	"github.com/katalvlaran/osrank/ledger"
	"github.com/katalvlaran/osrank/matrix"
)

// Build assembles the row-stochastic transition matrix T from the three
// relation matrices and the given hyperparameters.
//
// dep is P x P (project depends-on project), contrib and maintain are both
// P x A (project's contributors / maintainers). The result is
// (P+A) x (P+A): the first P rows/cols are projects, the rest accounts.
//
// Staging mirrors the original implementation's new_network_matrix exactly:
// transpose contrib and maintain first, row-normalise every block
// individually, scale by the matching hyperparameter, hadamard the
// maintainer-transpose term against the normalised contributor-transpose
// term for the account-to-project block, then hstack/vstack the four
// blocks and row-normalise the combined result once more.
func Build(dep, contrib, maintain *matrix.CSR[float64], h ledger.HyperParams) (*matrix.CSR[float64], error) {
	if err := h.Validate(); err != nil {
		return nil, adjacencyErrorf("Build", ErrInvalidHyperparam)
	}
	if err := checkShapes(dep, contrib, maintain); err != nil {
		return nil, err
	}
	fh := h.Floats()

	numAccounts := contrib.Cols()

	contribT := contrib.Transpose()
	contribTNorm := contribT.RowNormalize()

	maintainT := maintain.Transpose()
	maintainNorm := maintain.RowNormalize()

	projectToProject := dep.RowNormalize().ScalarMul(fh.DependFactor)

	projectToAccount, err := maintainNorm.ScalarMul(fh.MaintainFactor).Add(
		contrib.RowNormalize().ScalarMul(fh.ContribFactor),
	)
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}

	hadamardTerm, err := maintainT.ScalarMul(fh.MaintainPrimeFactor).Hadamard(contribTNorm)
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}
	accountToProject, err := hadamardTerm.Add(contribTNorm.ScalarMul(fh.ContribPrimeFactor))
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}

	accountToAccount := matrix.NewCSR[float64](numAccounts, numAccounts)

	topRow, err := matrix.HStack(projectToProject, projectToAccount)
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}
	bottomRow, err := matrix.HStack(accountToProject, accountToAccount)
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}

	combined, err := matrix.VStack(topRow, bottomRow)
	if err != nil {
		return nil, adjacencyErrorf("Build", err)
	}

	return combined.RowNormalize(), nil
}

// checkShapes verifies dep is square and that contrib/maintain share its row
// count and agree with each other on column count.
func checkShapes(dep, contrib, maintain *matrix.CSR[float64]) error {
	numProjects := dep.Rows()
	if dep.Cols() != numProjects {
		return adjacencyErrorf("Build", ErrShapeMismatch)
	}
	if contrib.Rows() != numProjects || maintain.Rows() != numProjects {
		return adjacencyErrorf("Build", ErrShapeMismatch)
	}
	if contrib.Cols() != maintain.Cols() {
		return adjacencyErrorf("Build", ErrShapeMismatch)
	}
	return nil
}
