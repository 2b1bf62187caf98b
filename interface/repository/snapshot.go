package repository

import (
	"math/big"

	"treasury/domain"

	"github.com/behrang/sqlbatch"
)

const (
	sqlSnapshotInsert = `
	insert into snapshots as c (
			id, reserve_balance, total_supply, excess, create_time
		)
		values (
			$1, $2::numeric, $3::numeric, $4::numeric, $5
		)
	on conflict (id) do nothing
`

	sqlSnapshotFindLatest = `
	select
		id, reserve_balance::text, total_supply::text, excess::text, create_time
	from snapshots
	order by create_time desc
	limit 1
`
)

type SnapshotRepository struct {
	batchHandler BatchHandler
}

func NewSnapshotRepository(db BatchHandler) *SnapshotRepository {
	return &SnapshotRepository{batchHandler: db}
}

func readSnapshot(scan func(...interface{}) error) (interface{}, error) {
	r := domain.ReserveSnapshot{}
	var reserveBalance, totalSupply, excess string
	err := scan(
		&r.Id, &reserveBalance, &totalSupply, &excess, &r.CreateTime,
	)
	if err != nil {
		return &r, err
	}
	r.ReserveBalance, _ = new(big.Int).SetString(reserveBalance, 10)
	r.TotalSupply, _ = new(big.Int).SetString(totalSupply, 10)
	r.Excess, _ = new(big.Int).SetString(excess, 10)
	return &r, nil
}

func (repo *SnapshotRepository) Insert(snapshot *domain.ReserveSnapshot) error {
	_, err := repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query: sqlSnapshotInsert,
			Args: []interface{}{
				snapshot.Id,
				snapshot.ReserveBalance.String(),
				snapshot.TotalSupply.String(),
				snapshot.Excess.String(),
				snapshot.CreateTime,
			},
			Affect: 1,
		},
	})
	return err
}

func (repo *SnapshotRepository) FindLatest() (*domain.ReserveSnapshot, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlSnapshotFindLatest,
			ReadOne: readSnapshot,
		},
	})
	result, _ := results[0].(*domain.ReserveSnapshot)
	return result, err
}
