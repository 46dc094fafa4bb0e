package state

import (
	"context"
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/navshell/internal/db"
)

// NavigationState is what survives a restart: the selection, its back
// history, whether the pane was open and any forced display mode.
type NavigationState struct {
	SelectionMode  string // "index" or "path"
	SelectedIndex  *int
	SelectedPath   string
	HistoryIndices []int
	HistoryPaths   []string
	PaneOpen       bool
	DisplayMode    string // empty when the width decides
}

func getNavigation(ctx context.Context, db *sql.DB) (*NavigationState, error) {
	row := db.QueryRowContext(ctx, `
		SELECT selection_mode, selected_index, selected_path, pane_open, display_mode
		FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var selectedIndex sql.NullInt64
	var selectedPath, displayMode sql.NullString

	err := row.Scan(&state.SelectionMode, &selectedIndex, &selectedPath, &state.PaneOpen, &displayMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedIndex = dbutil.NullIntPtr(selectedIndex)
	state.SelectedPath = dbutil.NullStringValue(selectedPath)
	state.DisplayMode = dbutil.NullStringValue(displayMode)

	rows, err := db.QueryContext(ctx, `SELECT flat_index, path FROM selection_history ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var idx sql.NullInt64
		var path sql.NullString
		if err := rows.Scan(&idx, &path); err != nil {
			return nil, err
		}
		if idx.Valid {
			state.HistoryIndices = append(state.HistoryIndices, int(idx.Int64))
		}
		if path.Valid {
			state.HistoryPaths = append(state.HistoryPaths, path.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &state, nil
}

func saveNavigation(ctx context.Context, db *sql.DB, state NavigationState) error {
	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO navigation_state (id, selection_mode, selected_index, selected_path, pane_open, display_mode)
			VALUES (1, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				selection_mode = excluded.selection_mode,
				selected_index = excluded.selected_index,
				selected_path = excluded.selected_path,
				pane_open = excluded.pane_open,
				display_mode = excluded.display_mode
		`, state.SelectionMode, dbutil.IntPtrArg(state.SelectedIndex), dbutil.StringArg(state.SelectedPath),
			state.PaneOpen, dbutil.StringArg(state.DisplayMode))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM selection_history`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO selection_history (position, flat_index, path) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		pos := 0
		for _, idx := range state.HistoryIndices {
			if _, err := stmt.ExecContext(ctx, pos, idx, nil); err != nil {
				return err
			}
			pos++
		}
		for _, p := range state.HistoryPaths {
			if _, err := stmt.ExecContext(ctx, pos, nil, p); err != nil {
				return err
			}
			pos++
		}
		return nil
	})
}
