// Package forst monta os relatórios FORST (ofertas, pedidos e metas por zona) e a planilha de exportação
package forst

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/fieldops/forst-api/infrastructure/repository"
	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/fieldops/forst-api/pkg/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Params são os filtros de uma requisição de relatório. Valores inválidos vindos da
// query string chegam aqui como filtros que não casam com nenhuma linha.
type Params struct {
	Year   int
	ZoneID *int
	UserID *int
}

type Reporter interface {
	Highlights(ctx context.Context, params Params) (*domain.HighlightsReport, error)
	ZoneMonthly(ctx context.Context, params Params) (*domain.ZoneMonthlyReport, error)
	Quarterly(ctx context.Context, params Params) (*domain.QuarterlyReport, error)
	ProductTypeSummary(ctx context.Context, params Params) (*domain.ProductTypeSummaryReport, error)
	PersonPerformance(ctx context.Context, params Params) (*domain.PersonPerformanceReport, error)
	ProductForecast(ctx context.Context, params Params) (*domain.ProductForecastReport, error)
	CompleteReport(ctx context.Context, params Params) (*domain.CompleteReport, error)
	Export(ctx context.Context, params Params) ([]byte, error)

	ListSnapshots(ctx context.Context, year int) ([]*domain.ReportSnapshot, error)
	LatestSnapshot(ctx context.Context, year int) (*domain.ReportSnapshot, error)
}

var _ Reporter = (*Service)(nil)

type Service struct {
	offerRepo        repository.OfferRepository
	zoneTargetRepo   repository.ZoneTargetRepository
	serviceZoneRepo  repository.ServiceZoneRepository
	userRepo         repository.UserRepository
	snapshotRepo     repository.ReportSnapshotRepository
	taxonomy         Taxonomy
	excludedStatuses []domain.OfferStatus
	orderStages      []domain.OfferStage
	lakhDivisor      int64
	now              func() time.Time
}

func NewService(
	offerRepo repository.OfferRepository,
	zoneTargetRepo repository.ZoneTargetRepository,
	serviceZoneRepo repository.ServiceZoneRepository,
	userRepo repository.UserRepository,
	snapshotRepo repository.ReportSnapshotRepository,
	cfg config.Forst,
) *Service {
	excluded := lo.Map(normalizeCodes(cfg.ExcludedStatuses), func(s string, _ int) domain.OfferStatus {
		return domain.OfferStatus(s)
	})
	stages := lo.Map(normalizeCodes(cfg.OrderStages), func(s string, _ int) domain.OfferStage {
		return domain.OfferStage(s)
	})

	return &Service{
		offerRepo:        offerRepo,
		zoneTargetRepo:   zoneTargetRepo,
		serviceZoneRepo:  serviceZoneRepo,
		userRepo:         userRepo,
		snapshotRepo:     snapshotRepo,
		taxonomy:         NewTaxonomy(cfg),
		excludedStatuses: excluded,
		orderStages:      stages,
		lakhDivisor:      cfg.LakhDivisor,
		now:              time.Now,
	}
}

func (s *Service) Highlights(ctx context.Context, params Params) (*domain.HighlightsReport, error) {
	ds, err := s.load(ctx, params, needOrders|needTargets)
	if err != nil {
		return nil, err
	}
	return BuildHighlights(ds, s.taxonomy), nil
}

func (s *Service) ZoneMonthly(ctx context.Context, params Params) (*domain.ZoneMonthlyReport, error) {
	ds, err := s.load(ctx, params, needOrders|needTargets)
	if err != nil {
		return nil, err
	}
	return BuildZoneMonthly(ds, s.taxonomy), nil
}

func (s *Service) Quarterly(ctx context.Context, params Params) (*domain.QuarterlyReport, error) {
	ds, err := s.load(ctx, params, needTargets)
	if err != nil {
		return nil, err
	}
	return BuildQuarterly(ds, s.taxonomy), nil
}

func (s *Service) ProductTypeSummary(ctx context.Context, params Params) (*domain.ProductTypeSummaryReport, error) {
	ds, err := s.load(ctx, params, needUsers)
	if err != nil {
		return nil, err
	}
	return BuildProductTypeSummary(ds, s.taxonomy), nil
}

func (s *Service) PersonPerformance(ctx context.Context, params Params) (*domain.PersonPerformanceReport, error) {
	ds, err := s.load(ctx, params, needUsers)
	if err != nil {
		return nil, err
	}
	return BuildPersonPerformance(ds, s.taxonomy), nil
}

func (s *Service) ProductForecast(ctx context.Context, params Params) (*domain.ProductForecastReport, error) {
	ds, err := s.load(ctx, params, 0)
	if err != nil {
		return nil, err
	}
	return BuildProductForecast(ds, s.taxonomy), nil
}

func (s *Service) CompleteReport(ctx context.Context, params Params) (*domain.CompleteReport, error) {
	ds, err := s.load(ctx, params, needOrders|needTargets|needUsers)
	if err != nil {
		return nil, err
	}
	return BuildCompleteReport(ds, s.taxonomy, s.now()), nil
}

// Export gera a planilha do relatório completo
func (s *Service) Export(ctx context.Context, params Params) ([]byte, error) {
	report, err := s.CompleteReport(ctx, params)
	if err != nil {
		return nil, err
	}

	content, err := RenderWorkbook(report, s.lakhDivisor)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar planilha")
	}

	return content, nil
}

func (s *Service) ListSnapshots(ctx context.Context, year int) ([]*domain.ReportSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar snapshots")
	}
	return snapshots, nil
}

func (s *Service) LatestSnapshot(ctx context.Context, year int) (*domain.ReportSnapshot, error) {
	snapshot, err := s.snapshotRepo.GetLatest(ctx, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar último snapshot")
	}
	return snapshot, nil
}

type datasetPart uint8

const (
	needOrders datasetPart = 1 << iota
	needTargets
	needUsers
)

// load lê em paralelo as linhas de que o relatório precisa; ofertas e zonas são sempre lidas
func (s *Service) load(ctx context.Context, params Params, parts datasetPart) (Dataset, error) {
	logger := log.ForContext(ctx)

	ds := Dataset{Year: params.Year}
	filters := domain.OfferFilters{
		Year:             params.Year,
		ZoneID:           params.ZoneID,
		UserID:           params.UserID,
		ExcludedStatuses: s.excludedStatuses,
		OrderStages:      s.orderStages,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zones, err := s.serviceZoneRepo.List(gctx)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar zonas")
		}
		if params.ZoneID != nil {
			zones = lo.Filter(zones, func(z domain.ServiceZone, _ int) bool { return z.ID == *params.ZoneID })
		}
		ds.Zones = zones
		return nil
	})

	g.Go(func() error {
		offers, err := s.offerRepo.ListOffersForYear(gctx, filters)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar ofertas")
		}
		ds.Offers = withoutStatuses(offers, s.excludedStatuses)
		return nil
	})

	if parts&needOrders != 0 {
		g.Go(func() error {
			orders, err := s.offerRepo.ListOrdersForYear(gctx, filters)
			if err != nil {
				return errors.Wrap(err, "erro ao buscar pedidos")
			}
			ds.Orders = orders
			return nil
		})
	}

	if parts&needTargets != 0 {
		g.Go(func() error {
			targets, err := s.zoneTargetRepo.ListByPeriodType(gctx, params.Year, domain.TargetPeriodYearly, params.ZoneID)
			if err != nil {
				return errors.Wrap(err, "erro ao buscar metas anuais")
			}
			ds.YearlyTargets = targets
			return nil
		})

		g.Go(func() error {
			targets, err := s.zoneTargetRepo.ListByPeriodType(gctx, params.Year, domain.TargetPeriodMonthly, params.ZoneID)
			if err != nil {
				return errors.Wrap(err, "erro ao buscar metas mensais")
			}
			ds.MonthlyTargets = targets
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}

	if parts&needUsers != 0 {
		users, err := s.userRepo.ListByIDs(ctx, PersonIDs(ds.Offers))
		if err != nil {
			return Dataset{}, errors.Wrap(err, "erro ao buscar usuários")
		}
		ds.Users = users
	}

	logger.WithFields(log.Fields{
		"year":    params.Year,
		"zones":   len(ds.Zones),
		"offers":  len(ds.Offers),
		"orders":  len(ds.Orders),
		"targets": len(ds.YearlyTargets) + len(ds.MonthlyTargets),
	}).Debug("forst: dataset carregado")

	return ds, nil
}
