// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
storage, enabling dependency injection and testing isolation.

# Basic Usage

Use OSStore to read and write the environment of the current process:

	store := &env.OSStore{}
	value, ok := store.LookupEnv("MY_VAR")
	err := store.Setenv("MY_VAR", "value")

Use MapStore when the environment should not leak between tests, or when a
set of variables must be assembled before it is handed to a component:

	store := env.NewMapStore(map[string]string{"MY_VAR": "value"})

# Seeding

A store can be populated from dotenv files or a flat YAML or JSON document. Unless
overload is requested, variables that already exist in the store are kept:

	err := env.LoadDotenv(store, false, ".env", env.DefaultDotenvPath("myapp"))

	f, _ := os.Open("defaults.yaml")
	err = env.LoadYAML(store, f, false)

	err = env.LoadJSON(store, []byte(`{"PORT": 8080}`), false)

A Watcher keeps a store in sync with dotenv files while the program runs:

	w := env.NewWatcher(store, slog.Default(), ".env")
	go w.Watch(ctx, func(err error) {
	    if err == nil {
	        reconfigure()
	    }
	})

# Testing

The Store interface allows injecting a mock in tests. A generated mock is
available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockStore(ctrl)
	mock.EXPECT().LookupEnv("MY_VAR").Return("test-value", true)
*/
package env
