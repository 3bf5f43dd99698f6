package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"tracksplitter/internal/fileutil"
	"tracksplitter/internal/logging"
	"tracksplitter/internal/preflight"
	"tracksplitter/internal/runlock"
	"tracksplitter/internal/services"
	"tracksplitter/internal/services/demucs"
)

func (p *Pipeline) provision(logger *slog.Logger, outputDir string) (*runlock.Lock, error) {
	if err := fileutil.EnsureDir(outputDir); err != nil {
		if errors.Is(err, fileutil.ErrPermission) {
			return nil, services.Wrap(services.ErrDirectory, StageProvision, "create",
				fmt.Sprintf("cannot create directory %s: permission denied", outputDir), err)
		}
		return nil, services.Wrap(services.ErrDirectory, StageProvision, "create",
			fmt.Sprintf("failed to create directory %s", outputDir), err)
	}
	if check := preflight.CheckDirectoryAccess("output directory", outputDir); !check.Passed {
		return nil, services.Wrap(services.ErrDirectory, StageProvision, "access", check.Detail, nil)
	}
	logger.Info("output directory ready", logging.String("output_dir", outputDir))

	lock, err := runlock.Acquire(p.cfg.Paths.LockDir, outputDir)
	if err != nil {
		return nil, services.Wrap(services.ErrLock, StageProvision, "lock", "", err)
	}
	logger.Debug("run lock acquired", logging.String("lock_file", lock.Path()))
	return lock, nil
}

func (p *Pipeline) download(ctx context.Context, logger *slog.Logger, params Params) error {
	logger.Info("downloading video",
		logging.String("url", params.URL),
		logging.String("output_dir", params.OutputDir),
	)
	if err := p.downloader.Download(ctx, params.URL, params.OutputDir); err != nil {
		return services.Wrap(services.ErrDownload, StageDownload, "", "downloader failed", err)
	}
	return nil
}

func (p *Pipeline) discover(logger *slog.Logger, outputDir string) (string, error) {
	exts := p.cfg.Discovery.Extensions
	video, err := fileutil.NewestMatching(outputDir, exts)
	if err != nil {
		if errors.Is(err, fileutil.ErrNoMatch) {
			return "", services.Wrap(services.ErrDiscovery, StageDiscover, "",
				fmt.Sprintf("no downloaded video found matching: %s", strings.Join(exts, ", ")), nil)
		}
		return "", services.Wrap(services.ErrDiscovery, StageDiscover, "", "scan output directory", err)
	}
	logger.Info("downloaded video located", logging.String("video_file", video))
	return video, nil
}

func (p *Pipeline) transcode(ctx context.Context, logger *slog.Logger, video string, params Params) (string, error) {
	wav := filepath.Join(params.OutputDir, params.Basename+".wav")
	logger.Info("converting to wav",
		logging.String("video_file", video),
		logging.String("wav_file", wav),
	)
	if err := p.transcoder.Transcode(ctx, video, wav); err != nil {
		return "", services.Wrap(services.ErrTranscode, StageTranscode, "", "transcoder failed", err)
	}
	return wav, nil
}

func (p *Pipeline) separate(ctx context.Context, logger *slog.Logger, wav, outputDir string) (string, []string, error) {
	stemsDir := filepath.Join(outputDir, p.cfg.Separation.Subdir)
	if err := fileutil.EnsureDir(stemsDir); err != nil {
		logging.WarnWithContext(logger, "could not create separation directory", "separation_dir_unavailable",
			logging.String("stems_dir", stemsDir),
			logging.Error(err),
			logging.String(logging.FieldImpact, "separator will attempt to create it"),
		)
	}

	logger.Info("running separator",
		logging.String("wav_file", wav),
		logging.String("stems_dir", stemsDir),
	)
	if err := p.separator.Separate(ctx, wav, stemsDir); err != nil {
		return stemsDir, nil, services.Wrap(services.ErrSeparation, StageSeparate, "", "separator failed", err)
	}

	stems, err := demucs.Stems(stemsDir)
	if err != nil {
		logging.WarnWithContext(logger, "could not list stems", "stem_listing_failed",
			logging.String("stems_dir", stemsDir),
			logging.Error(err),
		)
		return stemsDir, nil, nil
	}
	for _, stem := range stems {
		logger.Debug("stem written", logging.String("stem_file", stem))
	}
	logger.Info("separator output ready",
		logging.String("stems_dir", stemsDir),
		logging.Int("stem_count", len(stems)),
	)
	return stemsDir, stems, nil
}
