// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package docker reads the environment variables created by container links.

Linking a container under an alias exposes the target's address in a
variable named <ALIAS>_PORT, for example:

	DB_PORT=tcp://172.17.0.82:5432

The functions in this package take the alias, normalise it the way Docker
does for link variable names and read the matching variable through an [envvar.Accessor].

# Basic Usage

	a := envvar.New(&env.OSStore{})

	if docker.IsSet(a, "db") {
	    host, _ := docker.Host(a, "db")
	    port, _ := docker.Port(a, "db")
	    dsn := fmt.Sprintf("postgres://%s:%d/app", host.Or(""), port.Or(5432))
	}

# Defaults

Protocol, Host and Port accept the read options of the envvar package. A
[envvar.Default] stands for the component, not for the whole link:

	port, err := docker.Port(a, "cache", envvar.Default(6379))

A link variable that is present but does not have the form
scheme://host:port fails with [ErrInvalidLink].
*/
package docker
