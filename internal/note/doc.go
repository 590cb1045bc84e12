// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package note implements the note client: the in-memory note text, the
// transient status message shown to the user, and the load / save / edit
// operations that drive them against the configured endpoint.
//
// Lifecycle of the status message:
//
//	Initialize ─┬─ no endpoint ──────────────► "Error"          (persistent)
//	            └─ Load(clear=true)
//	Load  ──► "Loading..." ──┬─ ok ─────────► "Loaded"          (auto-clear)
//	                         └─ failure ────► "Failed To Load"  (auto-clear)
//	Save  ──► "Saving..."  ──┬─ ok ─────────► "Saved"           (auto-clear)
//	                         └─ failure ────► "Failed To Save"  (auto-clear)
//	EditText ───────────────────────────────► ""                (persistent)
//
// Every new message cancels the clear task of the previous one, and only the
// most recently issued Load or Save may apply its result.
package note
