package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/process-sim/sim"
)

// ScheduleRequest is the body of POST /schedule.
type ScheduleRequest struct {
	Processes []sim.ProcessSpec `json:"processes"`
	Algorithm string            `json:"algorithm"` // "all", a policy name, or a comma-separated list
	Quantum   int64             `json:"quantum"`   // optional; 0 uses the server default
}

// ScheduleResponse is the body of a successful POST /schedule.
type ScheduleResponse struct {
	Success bool        `json:"success"`
	Report  *sim.Report `json:"report"`
}

// scheduleHandler serves the simulator over HTTP.
type scheduleHandler struct {
	cfg Config
}

func newScheduleHandler(cfg Config) *scheduleHandler {
	return &scheduleHandler{cfg: cfg}
}

func (h *scheduleHandler) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":     "running",
		"algorithms": sim.ValidPolicyNames(),
	})
}

func (h *scheduleHandler) Schedule(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if len(req.Processes) == 0 {
		return badRequest(ctx, "no processes provided")
	}
	if limit := h.cfg.Input.MaxProcesses; limit > 0 && len(req.Processes) > limit {
		return badRequest(ctx, fmt.Sprintf("too many processes: %d, limit is %d", len(req.Processes), limit))
	}

	policies := h.cfg.Scheduler.Algorithms
	if req.Algorithm != "" && req.Algorithm != "all" {
		var err error
		if policies, err = sim.ParsePolicies(req.Algorithm); err != nil {
			return badRequest(ctx, err.Error())
		}
	}
	quantum := h.cfg.Scheduler.TimeQuantum
	if req.Quantum != 0 {
		if req.Quantum < 0 {
			return badRequest(ctx, "quantum must be positive")
		}
		quantum = req.Quantum
	}

	report, err := sim.Compare(sim.NewWorkload(req.Processes), policies, quantum)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	logrus.Infof("POST /schedule: %d processes, policies=%v, recommended=%s",
		len(req.Processes), policies, report.Recommendation.Policy)
	return ctx.JSON(ScheduleResponse{Success: true, Report: report})
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	logrus.Warnf("%s %s: %s", ctx.Method(), ctx.Path(), msg)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// newServerApp wires the HTTP routes.
func newServerApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := newScheduleHandler(cfg)
	app.Get("/health", h.Health)
	app.Post("/schedule", h.Schedule)
	return app
}

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Long:  "Start an HTTP server exposing POST /schedule (run policies over a JSON workload) and GET /health.",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := loadConfig(cmd)
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logrus.Infof("Serving scheduler on %s", addr)
		if err := newServerApp(cfg).Listen(addr); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 5000, "HTTP listen port (overrides server.port in defaults file)")
	rootCmd.AddCommand(serveCmd)
}
