// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		user_id      TEXT PRIMARY KEY,
		email        TEXT NOT NULL,
		kdf          TEXT NOT NULL,
		unlock_data  TEXT NOT NULL,
		crypto_state TEXT NOT NULL DEFAULT '',
		updated_at   TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pin_lock_types (
		user_id   TEXT PRIMARY KEY,
		lock_type TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pin_envelopes (
		user_id    TEXT NOT NULL,
		lock_type  TEXT NOT NULL,
		envelope   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, lock_type)
	);

	CREATE TABLE IF NOT EXISTS legacy_keys (
		user_id         TEXT PRIMARY KEY,
		master_key      TEXT NOT NULL,
		master_key_hash TEXT NOT NULL,
		updated_at      TIMESTAMP NOT NULL
	);`
