package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Barritosaurus/cpu-scheduler/config"
	"github.com/Barritosaurus/cpu-scheduler/internal/log"
	"github.com/Barritosaurus/cpu-scheduler/internal/process"
	"github.com/Barritosaurus/cpu-scheduler/internal/requests"
	"github.com/Barritosaurus/cpu-scheduler/internal/responses"
	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config     *config.SchedulerConfig
	dispatcher *schedulers.Dispatcher
	log        *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:     config,
		dispatcher: schedulers.NewDispatcher(logger),
		log:        logger,
	}
}

// Register mounts the scheduler routes under /api/v1.
func Register(app *fiber.App, h SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/schedule", h.AllAlgorithms)
		v1.Post("/schedule/:policy", h.Schedule)
	}
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	policy, err := schedulers.ParsePolicy(ctx.Params("policy"))
	if err != nil {
		return s.fail(ctx, err)
	}
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
	}

	report, err := s.dispatcher.Run(policy, request.Descriptors(), s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(responses.FromReport(report))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
	}

	reports, err := s.dispatcher.RunAll(request.Descriptors(), s.config.Policies, s.quantum(request))
	if err != nil {
		return s.fail(ctx, err)
	}
	out := make([]responses.ScheduleResponse, len(reports))
	for i := range reports {
		out[i] = responses.FromReport(reports[i])
	}
	return ctx.JSON(out)
}

type policyInfo struct {
	Name  string `json:"name"`
	Code  int    `json:"code"`
	Title string `json:"title"`
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	out := make([]policyInfo, len(schedulers.Policies))
	for i, p := range schedulers.Policies {
		out[i] = policyInfo{Name: p.String(), Code: int(p), Title: p.Title()}
	}
	return ctx.JSON(out)
}

// quantum falls back to the configured default when the request leaves it out.
func (s *SchedulerHandlerImpl) quantum(r requests.ScheduleRequest) int64 {
	if r.Quantum == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return r.Quantum
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var (
		upe *schedulers.UnknownPolicyError
		iqe *schedulers.InvalidQuantumError
		ipe *process.InvalidProcessError
	)
	switch {
	case errors.As(err, &upe):
		status = fiber.StatusNotFound
	case errors.As(err, &iqe), errors.As(err, &ipe):
		status = fiber.StatusBadRequest
	}
	s.log.Warn("schedule request rejected",
		slog.String("path", ctx.Path()),
		slog.Int("status", status),
		log.ErrAttr(err),
	)
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}
