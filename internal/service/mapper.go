package service

import (
	"encoding/json"
	"strings"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

func missing(field string) error {
	return entity.NewError("map shipment", entity.ErrUpstreamProtocol, nil, "missing "+field)
}

// MapShipment decodes a land shipment detail body and projects it onto the
// canonical snapshot.
func MapShipment(body []byte) (entity.ShipmentSnapshot, error) {
	var resp landSttResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entity.ShipmentSnapshot{}, entity.NewError("map shipment", entity.ErrUpstreamProtocol, err, "detail body is not json")
	}
	return mapLandStt(&resp)
}

// MapSummary decodes a search body and returns its first hit.
func MapSummary(body []byte) (entity.ShipmentSummary, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entity.ShipmentSummary{}, entity.NewError("map summary", entity.ErrUpstreamProtocol, err, "search body is not json")
	}
	if len(resp.Result) == 0 {
		return entity.ShipmentSummary{}, entity.NewError("map summary", entity.ErrUpstreamProtocol, nil, "empty result")
	}
	return mapSearchResult(resp.Result[0])
}

// mapLandStt never returns a partial snapshot: a missing required field
// fails the whole mapping.
func mapLandStt(resp *landSttResponse) (entity.ShipmentSnapshot, error) {
	var snap entity.ShipmentSnapshot

	switch {
	case resp.References == nil:
		return snap, missing("references")
	case resp.Location == nil:
		return snap, missing("location")
	case resp.Location.ShipperPlace == nil:
		return snap, missing("location.shipperPlace")
	case resp.Location.ConsigneePlace == nil:
		return snap, missing("location.consigneePlace")
	case resp.Goods == nil:
		return snap, missing("goods")
	case resp.Goods.Pieces == nil:
		return snap, missing("goods.pieces")
	case resp.Goods.Weight == nil || resp.Goods.Weight.Value == nil:
		return snap, missing("goods.weight")
	case resp.Events == nil:
		return snap, missing("events")
	case resp.Packages == nil:
		return snap, missing("packages")
	}

	snap.Sender = entity.Party{
		Name:    referenceName(resp.References.Shipper),
		Address: mapPlace(resp.Location.ShipperPlace),
	}
	snap.Receiver = entity.Party{
		Name:    referenceName(resp.References.Consignee),
		Address: mapPlace(resp.Location.ConsigneePlace),
	}
	snap.PackageDetails = entity.PackageDetails{
		PieceCount: *resp.Goods.Pieces,
		Weight:     *resp.Goods.Weight.Value,
		WeightUnit: resp.Goods.Weight.Unit,
		Dimensions: []entity.Dimension{},
	}

	snap.TrackingHistory = make([]entity.TrackingEvent, 0, len(resp.Events))
	for _, ev := range resp.Events {
		var loc *string
		if ev.Location != nil {
			loc = ev.Location.Name
		}
		snap.TrackingHistory = append(snap.TrackingHistory, entity.TrackingEvent{
			Code:     ev.Code,
			Date:     ev.Date,
			Location: loc,
			Comment:  ev.Comment,
		})
	}

	snap.PackageTracking = make([]entity.PackageTracking, 0, len(resp.Packages))
	for _, pkg := range resp.Packages {
		if pkg.Events == nil {
			return entity.ShipmentSnapshot{}, missing("packages[" + pkg.ID + "].events")
		}
		events := make([]entity.TrackingEvent, 0, len(pkg.Events))
		for _, ev := range pkg.Events {
			events = append(events, entity.TrackingEvent{
				Code:     ev.Code,
				Date:     ev.Date,
				Location: ev.Location,
				Comment:  ev.Comment,
			})
		}
		snap.PackageTracking = append(snap.PackageTracking, entity.PackageTracking{
			PackageID: pkg.ID,
			Events:    events,
		})
	}
	return snap, nil
}

func mapPlace(p *place) entity.Address {
	return entity.Address{
		CountryCode: p.CountryCode,
		Country:     p.Country,
		City:        p.City,
		PostCode:    p.PostCode,
	}
}

// referenceName keeps the carrier's list rendering, e.g. "[A, B]".
func referenceName(refs []string) string {
	if refs == nil {
		return ""
	}
	return "[" + strings.Join(refs, ", ") + "]"
}

func mapSearchResult(r searchResult) (entity.ShipmentSummary, error) {
	if r.ID == nil || *r.ID == "" {
		return entity.ShipmentSummary{}, entity.NewError("map summary", entity.ErrUpstreamProtocol, nil, "missing result[0].id")
	}
	s := entity.ShipmentSummary{
		ID:            *r.ID,
		STT:           r.STT,
		TransportMode: r.TransportMode,
		LastEventCode: r.LastEventCode,
		FromLocation:  r.FromLocation,
		ToLocation:    r.ToLocation,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
	if r.PercentageProgress != nil {
		s.PercentageProgress = *r.PercentageProgress
	}
	return s, nil
}
