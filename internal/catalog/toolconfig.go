package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
)

// SetToolConfig stores a per-project configuration blob for one external
// tool, replacing any previous blob for the same (project, tool) pair.
func (s *Store) SetToolConfig(ctx context.Context, projectUUID, toolName string, cfg map[string]interface{}) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return wrapError("set tool config", "", nil, err)
	}

	_, err = s.execContext(ctx, "set tool config",
		"INSERT OR REPLACE INTO tool_configs (project_uuid, tool_name, config) VALUES (?, ?, ?)",
		projectUUID, toolName, string(data))
	return err
}

// GetToolConfig fetches a tool's configuration for a project. Absent or
// corrupt blobs both return nil without error.
func (s *Store) GetToolConfig(ctx context.Context, projectUUID, toolName string) (map[string]interface{}, error) {
	var blob sql.NullString
	found, err := s.getContext(ctx, "get tool config", &blob,
		"SELECT config FROM tool_configs WHERE project_uuid = ? AND tool_name = ?",
		projectUUID, toolName)
	if err != nil || !found {
		return nil, err
	}
	if !blob.Valid || blob.String == "" {
		return nil, nil
	}

	var cfg map[string]interface{}
	if err := json.Unmarshal([]byte(blob.String), &cfg); err != nil {
		s.log.Warn("corrupt tool config blob",
			"uuid", projectUUID, "tool", toolName, "error", err)
		return nil, nil
	}
	return cfg, nil
}
