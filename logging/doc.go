// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory that can
be configured from the environment.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New()
	logger.Info("server started", "port", 8080)

Use functional options to customize the logger:

	logger := logging.New(
	    logging.WithFormat(logging.FormatText),
	    logging.WithLevel(slog.LevelDebug),
	)

# Environment

FromEnv turns LOG_FORMAT and LOG_LEVEL into options, so the same binary can
log text locally and JSON in production:

	opts, err := logging.FromEnv(envvar.Std())
	if err != nil {
	    return err
	}
	logger := logging.New(opts...)

	a := envvar.New(&env.OSStore{}, envvar.WithLogger(logger))

# Dynamic Level Changes

Pass a [log/slog.LevelVar] to change the level at runtime:

	var lvl slog.LevelVar
	logger := logging.New(logging.WithLevel(&lvl))
	lvl.Set(slog.LevelDebug) // takes effect immediately

# Handler Access

Use [NewHandler] when you need to wrap the handler with middleware:

	base := logging.NewHandler(logging.WithLevel(slog.LevelDebug))
	logger := slog.New(&myMiddleware{Handler: base})
*/
package logging
