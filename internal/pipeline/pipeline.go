package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"tracksplitter/internal/config"
	"tracksplitter/internal/logging"
	"tracksplitter/internal/preflight"
	"tracksplitter/internal/runner"
	"tracksplitter/internal/runlock"
	"tracksplitter/internal/services"
	"tracksplitter/internal/services/demucs"
	"tracksplitter/internal/services/ffmpeg"
	"tracksplitter/internal/services/ytdlp"
)

// Stage names used in logs and error messages.
const (
	StagePreflight = "preflight"
	StageProvision = "provision"
	StageDownload  = "download"
	StageDiscover  = "discover"
	StageTranscode = "transcode"
	StageSeparate  = "separate"
)

// Params are the immutable inputs of a single run.
type Params struct {
	OutputDir string
	URL       string
	Basename  string
}

// Result describes the artifacts a run left on disk.
type Result struct {
	RunID     string
	VideoPath string
	WavPath   string
	StemsDir  string
	Stems     []string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExecutor routes every external command through exec.
func WithExecutor(exec runner.Executor) Option {
	return func(p *Pipeline) {
		if exec != nil {
			p.exec = exec
		}
	}
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Pipeline downloads a video, extracts WAV audio and optionally separates stems.
type Pipeline struct {
	cfg        config.Config
	logger     *slog.Logger
	exec       runner.Executor
	downloader *ytdlp.Client
	transcoder *ffmpeg.Client
	separator  *demucs.Client
}

// New validates cfg and builds the tool clients. The configuration is copied;
// later changes to cfg do not affect the pipeline.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "", "", "configuration required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "", "", "invalid configuration", err)
	}
	p := &Pipeline{cfg: *cfg, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.exec == nil {
		p.exec = runner.New(p.logger)
	}
	p.logger = logging.NewComponentLogger(p.logger, "pipeline")

	var err error
	p.downloader, err = ytdlp.New(p.cfg.Tools.Downloader,
		ytdlp.WithExecutor(p.exec),
		ytdlp.WithOutputTemplate(p.cfg.Download.OutputTemplate),
		ytdlp.WithExtraArgs(p.cfg.Download.ExtraArgs...),
	)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "", "", "downloader", err)
	}
	p.transcoder, err = ffmpeg.New(p.cfg.Tools.Transcoder, p.cfg.AudioArgs(), ffmpeg.WithExecutor(p.exec))
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "", "", "transcoder", err)
	}
	if p.cfg.Separation.Enabled {
		p.separator, err = demucs.New(p.cfg.Tools.Separator,
			demucs.WithExecutor(p.exec),
			demucs.WithModel(p.cfg.Separation.Model),
			demucs.WithExtraArgs(p.cfg.Separation.ExtraArgs...),
		)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "", "", "separator", err)
		}
	}
	return p, nil
}

// Run validates the positional arguments and executes the pipeline.
func (p *Pipeline) Run(ctx context.Context, args []string) (Result, error) {
	parsed, err := preflight.ParseArgs(args)
	if err != nil {
		return Result{}, err
	}
	return p.Execute(ctx, Params(parsed))
}

// Execute runs every stage in order and stops at the first failure. Nothing
// on disk is touched until the required tools have been located.
func (p *Pipeline) Execute(ctx context.Context, params Params) (Result, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)
	result := Result{RunID: runID}

	if err := preflight.CheckBasename(params.Basename); err != nil {
		return result, err
	}
	if !filepath.IsAbs(params.OutputDir) {
		return result, services.Wrap(services.ErrUsage, "", "", "output directory must be absolute", nil)
	}

	logger.Info("track-splitter run started",
		logging.String("output_dir", params.OutputDir),
		logging.String("url", params.URL),
		logging.String("basename", params.Basename),
		logging.Bool("separation_enabled", p.cfg.Separation.Enabled),
	)

	if err := p.runStage(ctx, StagePreflight, func(context.Context, *slog.Logger) error {
		_, err := preflight.CheckTools(&p.cfg)
		return err
	}); err != nil {
		return result, err
	}

	var lock *runlock.Lock
	if err := p.runStage(ctx, StageProvision, func(ctx context.Context, stageLogger *slog.Logger) error {
		var err error
		lock, err = p.provision(stageLogger, params.OutputDir)
		return err
	}); err != nil {
		return result, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WarnWithContext(logger, "failed to release run lock", "lock_release_failed",
				logging.String("lock_file", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "remove the lock file if no other run is active"),
			)
		}
	}()

	if err := p.runStage(ctx, StageDownload, func(ctx context.Context, stageLogger *slog.Logger) error {
		return p.download(ctx, stageLogger, params)
	}); err != nil {
		return result, err
	}

	if err := p.runStage(ctx, StageDiscover, func(_ context.Context, stageLogger *slog.Logger) error {
		var err error
		result.VideoPath, err = p.discover(stageLogger, params.OutputDir)
		return err
	}); err != nil {
		return result, err
	}

	if err := p.runStage(ctx, StageTranscode, func(ctx context.Context, stageLogger *slog.Logger) error {
		var err error
		result.WavPath, err = p.transcode(ctx, stageLogger, result.VideoPath, params)
		return err
	}); err != nil {
		return result, err
	}

	if p.separator == nil {
		p.skipStage(ctx, StageSeparate, "separation disabled")
	} else if err := p.runStage(ctx, StageSeparate, func(ctx context.Context, stageLogger *slog.Logger) error {
		var err error
		result.StemsDir, result.Stems, err = p.separate(ctx, stageLogger, result.WavPath, params.OutputDir)
		return err
	}); err != nil {
		return result, err
	}

	logger.Info("track-splitter run completed",
		logging.String("video_file", result.VideoPath),
		logging.String("wav_file", result.WavPath),
		logging.String("stems_dir", result.StemsDir),
		logging.Int("stem_count", len(result.Stems)),
	)
	return result, nil
}

