package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	// UptimeSeconds tracks the operator uptime in seconds
	UptimeSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "uptime_seconds",
		Help:      "The uptime of the operator in seconds",
	})

	// NewTaskCreated events handled
	TasksReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "tasks_received_total",
		Help:      "Total NewTaskCreated events received",
	})

	TasksRespondedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "tasks_responded_total",
		Help:      "Total tasks responded to on-chain",
	})

	TasksPaidTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "tasks_paid_total",
		Help:      "Total tasks marked as paid on-chain",
	})

	// stage: sign, eligibility, respond, payment, mark_paid
	TaskFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "task_failures_total",
		Help:      "Task handling failures by stage",
	}, []string{"stage"})

	// Time from event received until the task is marked as paid
	TaskDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "task_duration_seconds",
		Help:      "Time taken to handle a task, from signing until it is marked as paid",
		Buckets:   prometheus.DefBuckets,
	})

	// step: delegation, avs; status: registered, skipped, failed
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "operator",
		Name:      "registrations_total",
		Help:      "Operator registration attempts by step and status",
	}, []string{"step", "status"})

	// Synthetic tasks submitted by the task generator, status: success, failed
	TasksCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payroll_avs",
		Subsystem: "taskgen",
		Name:      "tasks_created_total",
		Help:      "Synthetic tasks submitted",
	}, []string{"status"})
)

const (
	StageSign        = "sign"
	StageEligibility = "eligibility"
	StageRespond     = "respond"
	StagePayment     = "payment"
	StageMarkPaid    = "mark_paid"
)

func updateUptime() {
	UptimeSeconds.Set(time.Since(startTime).Seconds())
}
