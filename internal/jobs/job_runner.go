package jobs

import (
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/config"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/logger"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	roles  service.RoleService
	config *config.Config
}

func NewJobRunner(roles service.RoleService, cfg *config.Config) *JobRunner {
	return &JobRunner{roles: roles, config: cfg}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
