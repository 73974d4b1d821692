package api

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Amounts travel as decimal strings on the wire.

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a decimal", common.ErrValidation, field, s)
	}
	return d, nil
}

func timeFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func LineItemsToProto(items []models.LineItem) []*pb.LineItem {
	out := make([]*pb.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.LineItem{
			Sku:       it.SKU,
			Name:      it.Name,
			Quantity:  int32(it.Quantity),
			UnitPrice: it.UnitPrice.String(),
		})
	}
	return out
}

func LineItemsFromProto(items []*pb.LineItem) ([]models.LineItem, error) {
	out := make([]models.LineItem, 0, len(items))
	for i, it := range items {
		price, err := parseAmount(fmt.Sprintf("line_items[%d].unit_price", i), it.GetUnitPrice())
		if err != nil {
			return nil, err
		}
		out = append(out, models.LineItem{
			SKU:       it.GetSku(),
			Name:      it.GetName(),
			Quantity:  int(it.GetQuantity()),
			UnitPrice: price,
		})
	}
	return out, nil
}

func (r *CaptureRequest) ToProto() *pb.CaptureRequest {
	return &pb.CaptureRequest{
		TerminalId:        r.TerminalID,
		IdempotencyKey:    r.IdempotencyKey,
		Currency:          r.Currency,
		PaymentMethod:     r.PaymentMethod,
		CashierId:         r.CashierID,
		CustomerReference: r.CustomerReference,
		LineItems:         LineItemsToProto(r.LineItems),
	}
}

// CaptureRequestFromProto fails with common.ErrValidation when a unit price
// does not parse.
func CaptureRequestFromProto(in *pb.CaptureRequest) (*CaptureRequest, error) {
	items, err := LineItemsFromProto(in.GetLineItems())
	if err != nil {
		return nil, err
	}
	return &CaptureRequest{
		TerminalID:        in.GetTerminalId(),
		IdempotencyKey:    in.GetIdempotencyKey(),
		Currency:          in.GetCurrency(),
		PaymentMethod:     in.GetPaymentMethod(),
		CashierID:         in.GetCashierId(),
		CustomerReference: in.GetCustomerReference(),
		LineItems:         items,
	}, nil
}

func (r *CaptureResponse) ToProto() *pb.CaptureResponse {
	return &pb.CaptureResponse{
		RecordId:    r.RecordID,
		TerminalId:  r.TerminalID,
		AmountTotal: r.AmountTotal.String(),
		Currency:    r.Currency,
		IsDuplicate: r.IsDuplicate,
		CreatedAt:   timestamppb.New(r.CreatedAt),
	}
}

func CaptureResponseFromProto(in *pb.CaptureResponse) (*CaptureResponse, error) {
	total, err := parseAmount("amount_total", in.GetAmountTotal())
	if err != nil {
		return nil, err
	}
	return &CaptureResponse{
		RecordID:    in.GetRecordId(),
		TerminalID:  in.GetTerminalId(),
		AmountTotal: total,
		Currency:    in.GetCurrency(),
		IsDuplicate: in.GetIsDuplicate(),
		CreatedAt:   timeFromProto(in.GetCreatedAt()),
	}, nil
}

func (r *HeartbeatResponse) ToProto() *pb.HeartbeatResponse {
	return &pb.HeartbeatResponse{
		TerminalId:    r.TerminalID,
		Status:        string(r.Status),
		CentralLinkUp: r.CentralLinkUp,
		ServerTime:    timestamppb.New(r.ServerTime),
	}
}

func HeartbeatResponseFromProto(in *pb.HeartbeatResponse) *HeartbeatResponse {
	return &HeartbeatResponse{
		TerminalID:    in.GetTerminalId(),
		Status:        models.Status(in.GetStatus()),
		CentralLinkUp: in.GetCentralLinkUp(),
		ServerTime:    timeFromProto(in.GetServerTime()),
	}
}

func SyncResultToProto(r *models.SyncResult) *pb.SyncResponse {
	return &pb.SyncResponse{
		TerminalId:   r.TerminalID,
		Pushed:       int64(r.Pushed),
		Duplicates:   int64(r.Duplicates),
		PendingAfter: int64(r.PendingAfter),
	}
}

func SyncResultFromProto(in *pb.SyncResponse) *models.SyncResult {
	return &models.SyncResult{
		TerminalID:   in.GetTerminalId(),
		Pushed:       int(in.GetPushed()),
		Duplicates:   int(in.GetDuplicates()),
		PendingAfter: int(in.GetPendingAfter()),
	}
}

func OverviewToProto(o *models.Overview) *pb.OverviewResponse {
	return &pb.OverviewResponse{
		TotalTerminals:     int64(o.TotalTerminals),
		Online:             int64(o.Online),
		Offline:            int64(o.Offline),
		PendingSyncCount:   int64(o.PendingSyncCount),
		CentralRecordCount: int64(o.CentralRecordCount),
		CentralTotalAmount: o.CentralTotalAmount.StringFixed(models.AmountPlaces),
	}
}

func OverviewFromProto(in *pb.OverviewResponse) (*models.Overview, error) {
	total, err := parseAmount("central_total_amount", in.GetCentralTotalAmount())
	if err != nil {
		return nil, err
	}
	return &models.Overview{
		TotalTerminals:     int(in.GetTotalTerminals()),
		Online:             int(in.GetOnline()),
		Offline:            int(in.GetOffline()),
		PendingSyncCount:   int(in.GetPendingSyncCount()),
		CentralRecordCount: int(in.GetCentralRecordCount()),
		CentralTotalAmount: total,
	}, nil
}

func TerminalStatsToProto(stats []*models.TerminalStats) []*pb.TerminalStats {
	out := make([]*pb.TerminalStats, 0, len(stats))
	for _, st := range stats {
		row := &pb.TerminalStats{
			TerminalId:    st.TerminalID,
			Status:        string(st.Status),
			CentralLinkUp: st.CentralLinkUp,
			EdgeCount:     int64(st.EdgeCount),
			EdgeAmount:    st.EdgeAmount.StringFixed(models.AmountPlaces),
			CentralCount:  int64(st.CentralCount),
			CentralAmount: st.CentralAmount.StringFixed(models.AmountPlaces),
			PendingCount:  int64(st.PendingCount),
		}
		if st.LastHeartbeatAt != nil {
			row.LastHeartbeatAt = timestamppb.New(*st.LastHeartbeatAt)
		}
		out = append(out, row)
	}
	return out
}

func TerminalStatsFromProto(rows []*pb.TerminalStats) ([]*models.TerminalStats, error) {
	out := make([]*models.TerminalStats, 0, len(rows))
	for _, row := range rows {
		edgeAmount, err := parseAmount("edge_amount", row.GetEdgeAmount())
		if err != nil {
			return nil, err
		}
		centralAmount, err := parseAmount("central_amount", row.GetCentralAmount())
		if err != nil {
			return nil, err
		}
		st := &models.TerminalStats{
			TerminalID:    row.GetTerminalId(),
			Status:        models.Status(row.GetStatus()),
			CentralLinkUp: row.GetCentralLinkUp(),
			EdgeCount:     int(row.GetEdgeCount()),
			EdgeAmount:    edgeAmount,
			CentralCount:  int(row.GetCentralCount()),
			CentralAmount: centralAmount,
			PendingCount:  int(row.GetPendingCount()),
		}
		if ts := row.GetLastHeartbeatAt(); ts != nil {
			at := ts.AsTime()
			st.LastHeartbeatAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}
