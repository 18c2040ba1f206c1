// Package associator resolve a cidade de cada registro de faturamento
// cruzando o circo e a data do evento com os períodos do cadastro.
package associator

import (
	"log"

	"github.com/mariacarolk/socrates-dash-v2/internal/dateutil"
	"github.com/mariacarolk/socrates-dash-v2/internal/model"
)

// index multimapa circo -> períodos na ordem original de inserção, que define
// o desempate: o primeiro cadastro que contém a data vence
type index map[string][]model.ShowCityEntry

// buildIndex monta o índice a partir do snapshot do cadastro, descartando
// períodos invertidos (anomalias dignas de log, não esperadas)
func buildIndex(entries []model.ShowCityEntry) index {
	idx := make(index)
	for _, e := range entries {
		if e.StartDate.After(e.EndDate) {
			log.Printf("aviso: datas inconsistentes para %s em %s: %s > %s",
				e.Show, e.City, dateutil.FormatBR(e.StartDate), dateutil.FormatBR(e.EndDate))
			continue
		}
		idx[e.Show] = append(idx[e.Show], e)
	}
	return idx
}

// resolve encontra a cidade do registro; sem correspondência ou com data
// inválida, devolve o sentinela "Não encontrada"
func (idx index) resolve(record model.RevenueRecord) string {
	eventDate, ok := dateutil.ParseBR(record.EventDate)
	if !ok {
		return model.CityNotFound
	}
	for _, e := range idx[record.Show] {
		if dateutil.WithinInclusive(eventDate, e.StartDate, e.EndDate) {
			return e.City
		}
	}
	return model.CityNotFound
}

// Associate atribui uma cidade a cada registro de faturamento com base no
// snapshot atual do cadastro
func Associate(records []model.RevenueRecord, entries []model.ShowCityEntry) []model.AssociatedRecord {
	idx := buildIndex(entries)

	out := make([]model.AssociatedRecord, 0, len(records))
	for _, record := range records {
		out = append(out, model.AssociatedRecord{
			RevenueRecord: record,
			City:          idx.resolve(record),
		})
	}
	return out
}
