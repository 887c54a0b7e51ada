package stockaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/valuation"
	"github.com/jhoicas/stock-ou-api/pkg/logger"
)

// ActionDoneInput movimientos a finalizar para una empresa.
type ActionDoneInput struct {
	CompanyID       string
	UserID          string
	MoveIDs         []string
	CancelBackorder bool
}

// ActionDoneUseCase finaliza movimientos de stock: divide los parciales, actualiza
// existencias, genera capas y asientos de valoración y los asientos de traslado
// entre unidades operativas. Todo en una sola transacción.
type ActionDoneUseCase struct {
	txRunner  TxRunner
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewActionDoneUseCase construye el caso de uso. publisher puede ser nil.
func NewActionDoneUseCase(txRunner TxRunner, publisher EventPublisher, log *logger.Logger) *ActionDoneUseCase {
	return &ActionDoneUseCase{
		txRunner:  txRunner,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// ActionDone finaliza los movimientos indicados. Cualquier error revierte la transacción
// completa: ningún movimiento queda hecho sin sus asientos.
func (uc *ActionDoneUseCase) ActionDone(ctx context.Context, in ActionDoneInput) (*dto.ActionDoneResponse, error) {
	ids := uniqueIDs(in.MoveIDs)
	if in.CompanyID == "" || len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var (
		resp   *dto.ActionDoneResponse
		posted []*entity.AccountMove
	)
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		resp = &dto.ActionDoneResponse{
			DoneMoveIDs:    []string{},
			SkippedMoveIDs: []string{},
			Backorders:     []dto.BackorderDTO{},
			Layers:         []dto.ValuationLayerDTO{},
			AccountMoveIDs: []string{},
		}
		posted = posted[:0]
		now := uc.now()

		done := make([]*valuation.Move, 0, len(ids))
		for _, id := range ids {
			m, err := uc.finalize(ctx, r, in, id, now, resp)
			if err != nil {
				return err
			}
			if m == nil {
				continue
			}
			res, err := valuation.ValueMove(m, m.QuantityDone, now)
			if err != nil {
				return err
			}
			if res.Entry != nil {
				if err := uc.postEntry(ctx, r, res.Entry, now); err != nil {
					return err
				}
				posted = append(posted, res.Entry)
				resp.AccountMoveIDs = append(resp.AccountMoveIDs, res.Entry.ID)
			}
			for i := range res.Layers {
				layer := &res.Layers[i]
				layer.ID = uuid.New().String()
				layer.CreatedAt = now
				if res.Entry != nil {
					layer.AccountMoveID = entity.SomeID(res.Entry.ID)
				}
				if err := r.Layers.Create(ctx, layer); err != nil {
					return fmt.Errorf("crear capa de valoración: %w", err)
				}
				resp.Layers = append(resp.Layers, toLayerDTO(layer))
			}
			done = append(done, m)
		}

		// Traslados entre unidades operativas: cada movimiento que califica lleva su asiento.
		for _, m := range done {
			if !valuation.NeedsInterUnitEntry(m) {
				continue
			}
			am, err := valuation.BuildInterUnitEntry(m, m.QuantityDone, now)
			if err != nil {
				return err
			}
			if err := uc.postEntry(ctx, r, am, now); err != nil {
				return err
			}
			uc.log.Info().
				Str("move_id", m.ID).
				Str("account_move_id", am.ID).
				Str("operating_unit_id", m.OperatingUnitID.String()).
				Str("operating_unit_dest_id", m.OperatingUnitDestID.String()).
				Msg("asiento de traslado entre unidades operativas")
			posted = append(posted, am)
			resp.AccountMoveIDs = append(resp.AccountMoveIDs, am.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, posted)
	return resp, nil
}

// finalize bloquea el movimiento, separa el remanente en backorder, lo marca hecho
// y actualiza existencias. Devuelve el movimiento resuelto para valorarlo, o nil si
// ya estaba hecho o cancelado.
func (uc *ActionDoneUseCase) finalize(
	ctx context.Context,
	r Repos,
	in ActionDoneInput,
	id string,
	now time.Time,
	resp *dto.ActionDoneResponse,
) (*valuation.Move, error) {
	mv, err := r.Moves.GetForUpdate(ctx, in.CompanyID, id)
	if err != nil {
		return nil, fmt.Errorf("bloquear movimiento %s: %w", id, err)
	}
	if mv == nil {
		return nil, domain.ErrNotFound
	}
	if mv.IsFinal() {
		uc.log.Debug().Str("move_id", mv.ID).Str("state", mv.State).Msg("movimiento ya finalizado, se omite")
		resp.SkippedMoveIDs = append(resp.SkippedMoveIDs, mv.ID)
		return nil, nil
	}
	if mv.QuantityDone.IsNegative() || mv.QuantityDone.GreaterThan(mv.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	if mv.QuantityDone.IsZero() {
		mv.QuantityDone = mv.Quantity
	}

	if remainder := mv.Quantity.Sub(mv.QuantityDone); remainder.IsPositive() {
		if !in.CancelBackorder {
			backorder := newBackorder(mv, remainder, now)
			if err := r.Moves.Create(ctx, backorder); err != nil {
				return nil, fmt.Errorf("crear backorder de %s: %w", mv.ID, err)
			}
			resp.Backorders = append(resp.Backorders, dto.BackorderDTO{
				ID:            backorder.ID,
				BackorderOfID: mv.ID,
				Quantity:      remainder,
			})
		}
		mv.Quantity = mv.QuantityDone
	}

	mv.State = entity.MoveStateDone
	mv.Date = now
	mv.UpdatedAt = now
	if err := r.Moves.Update(ctx, mv); err != nil {
		return nil, fmt.Errorf("actualizar movimiento %s: %w", mv.ID, err)
	}

	m, err := loadMove(ctx, r, mv)
	if err != nil {
		return nil, err
	}
	// El costo promedio se calcula con las existencias previas a la entrada.
	if valuation.UpdatesStandardPrice(m) {
		if err := updateStandardPrice(ctx, r, m); err != nil {
			return nil, err
		}
	}
	if m.Source.IsInternalOrTransit() {
		if err := adjustStock(ctx, r, mv.ProductID, mv.LocationID, mv.QuantityDone.Neg(), now); err != nil {
			return nil, err
		}
	}
	if m.Dest.IsInternalOrTransit() {
		if err := adjustStock(ctx, r, mv.ProductID, mv.LocationDestID, mv.QuantityDone, now); err != nil {
			return nil, err
		}
	}
	uc.log.Debug().
		Str("move_id", mv.ID).
		Str("user_id", in.UserID).
		Str("quantity", mv.QuantityDone.String()).
		Msg("movimiento hecho")
	resp.DoneMoveIDs = append(resp.DoneMoveIDs, mv.ID)
	return m, nil
}

// postEntry numera, contabiliza y persiste el asiento.
func (uc *ActionDoneUseCase) postEntry(ctx context.Context, r Repos, am *entity.AccountMove, now time.Time) error {
	am.ID = uuid.New().String()
	name, err := r.AccountMoves.NextName(ctx, am.JournalID, now)
	if err != nil {
		return fmt.Errorf("numerar asiento: %w", err)
	}
	am.Name = name
	for i := range am.Lines {
		am.Lines[i].ID = uuid.New().String()
		am.Lines[i].MoveID = am.ID
	}
	if err := valuation.Post(am, now); err != nil {
		return err
	}
	if err := r.AccountMoves.Create(ctx, am); err != nil {
		return fmt.Errorf("crear asiento %s: %w", am.Name, err)
	}
	return nil
}

// publish notifica los asientos ya confirmados. Un fallo del broker no revierte nada.
func (uc *ActionDoneUseCase) publish(ctx context.Context, moves []*entity.AccountMove) {
	if uc.publisher == nil || len(moves) == 0 {
		return
	}
	events := make([]AccountMovePostedEvent, 0, len(moves))
	for _, am := range moves {
		events = append(events, toPostedEvent(am))
	}
	if err := uc.publisher.PublishAccountMovePosted(ctx, events...); err != nil {
		uc.log.Warn().Err(err).Int("events", len(events)).Msg("no se pudieron publicar los asientos contabilizados")
	}
}

func newBackorder(mv *entity.StockMove, remainder decimal.Decimal, now time.Time) *entity.StockMove {
	backorder := *mv
	backorder.ID = uuid.New().String()
	backorder.Quantity = remainder
	backorder.QuantityDone = decimal.Zero
	backorder.State = entity.MoveStateConfirmed
	backorder.BackorderOfID = entity.SomeID(mv.ID)
	backorder.Date = now
	backorder.CreatedAt = now
	backorder.UpdatedAt = now
	return &backorder
}

// updateStandardPrice recalcula el costo del producto con la entrada de m y lo persiste.
func updateStandardPrice(ctx context.Context, r Repos, m *valuation.Move) error {
	onHand, err := r.Stock.OnHand(ctx, m.ProductID)
	if err != nil {
		return fmt.Errorf("existencias de %s: %w", m.ProductID, err)
	}
	price := valuation.StandardPriceAfterReceipt(m, onHand, m.QuantityDone)
	if err := r.Products.UpdateStandardPrice(ctx, m.ProductID, price); err != nil {
		return fmt.Errorf("costo de %s: %w", m.ProductID, err)
	}
	m.Product.StandardPrice = price
	return nil
}

// adjustStock suma delta al quant del producto en la ubicación. Se permiten existencias negativas.
func adjustStock(ctx context.Context, r Repos, productID, locationID string, delta decimal.Decimal, now time.Time) error {
	stock, err := r.Stock.GetForUpdate(ctx, productID, locationID)
	if err != nil {
		return fmt.Errorf("bloquear stock: %w", err)
	}
	stock.Quantity = stock.Quantity.Add(delta)
	stock.UpdatedAt = now
	if err := r.Stock.Upsert(ctx, stock); err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
