package repository

import (
	"treasury/domain"

	"github.com/behrang/sqlbatch"
)

const (
	sqlEventInsert = `
	insert into events as c (
			id, kind, payload, create_time
		)
		values (
			$1, $2, $3::jsonb, $4
		)
	on conflict (id) do nothing
`

	sqlEventFind = `
	select
		id, kind, payload, create_time
	from events
	where id = $1
`

	sqlEventFindAllByKind = `
	select
		id, kind, payload, create_time
	from events
	where kind = $1
	order by create_time
`
)

type EventRepository struct {
	batchHandler BatchHandler
}

func NewEventRepository(db BatchHandler) *EventRepository {
	return &EventRepository{batchHandler: db}
}

func readEvent(scan func(...interface{}) error) (interface{}, error) {
	r := domain.Event{}
	var payloadJson []byte
	err := scan(
		&r.Id, &r.Kind, &payloadJson, &r.CreateTime,
	)
	if err != nil {
		return &r, err
	}
	r.Payload = string(payloadJson)
	return &r, nil
}

func readAllEvents(all interface{}, scan func(...interface{}) error) (interface{}, error) {
	r := domain.Event{}
	var payloadJson []byte
	err := scan(
		&r.Id, &r.Kind, &payloadJson, &r.CreateTime,
	)
	if err == nil {
		r.Payload = string(payloadJson)
	}

	list := all.([]domain.Event)
	list = append(list, r)
	return list, err
}

func (repo *EventRepository) Record(event *domain.Event) error {
	_, err := repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query: sqlEventInsert,
			Args: []interface{}{
				event.Id, event.Kind, event.Payload, event.CreateTime,
			},
			Affect: 1,
		},
	})
	return err
}

func (repo *EventRepository) Find(id string) (*domain.Event, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlEventFind,
			Args:    []interface{}{id},
			ReadOne: readEvent,
		},
	})
	result, _ := results[0].(*domain.Event)
	return result, err
}

func (repo *EventRepository) FindAllByKind(kind string) ([]domain.Event, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlEventFindAllByKind,
			Args:    []interface{}{kind},
			Init:    make([]domain.Event, 0),
			ReadAll: readAllEvents,
		},
	})
	result, _ := results[0].([]domain.Event)
	return result, err
}
