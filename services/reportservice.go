package services

import (
	"sort"

	"opsdesk/model"
)

// ReportRow is one exported task line. Formatting (PDF/Excel) belongs to the
// rendering collaborator; this layer only guarantees a deterministic,
// correctly grouped and filtered row set.
type ReportRow struct {
	TaskName      string `json:"taskName"`
	Department    string `json:"department"`
	AssignedTo    string `json:"assignedTo"`
	Status        string `json:"status"`
	Deadline      string `json:"deadline"`
	RevisionCount int    `json:"revisionCount"`
}

type ReportGroup struct {
	ClientID   string      `json:"clientId"`
	ClientName string      `json:"clientName"`
	Rows       []ReportRow `json:"rows"`
}

// BuildReport groups task rows by client, groups ordered by client name,
// rows within a group ordered by deadline with undated rows last. Tasks with
// no client reference land in a trailing "Unassigned" group. Department and
// status filters are optional.
func BuildReport(tasks []model.Task, clients []model.Client, department, status string) []ReportGroup {
	knownIDs := map[string]bool{}
	knownNames := map[string]bool{}
	for _, c := range clients {
		if c.ClientID != "" {
			knownIDs[c.ClientID] = true
		}
		if c.ClientName != "" {
			knownNames[c.ClientName] = true
		}
	}

	byKey := map[string][]model.Task{}
	for _, t := range tasks {
		if department != "" && t.Department != department && t.OriginalDepartment != department {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		key := taskClientKey(t, knownIDs, knownNames)
		byKey[key] = append(byKey[key], t)
	}

	groups := []ReportGroup{}
	seen := map[string]bool{}
	for _, c := range clients {
		key := clientKey(c.ClientID, c.ClientName)
		if seen[key] {
			continue
		}
		seen[key] = true
		// A task may carry only the client's name, so collect both keys.
		rows := append(byKey["id:"+c.ClientID], byKey["name:"+c.ClientName]...)
		delete(byKey, "id:"+c.ClientID)
		delete(byKey, "name:"+c.ClientName)
		if len(rows) == 0 {
			continue
		}
		groups = append(groups, ReportGroup{ClientID: c.ClientID, ClientName: c.ClientName, Rows: toRows(rows)})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ClientName < groups[j].ClientName
	})

	// Tasks whose client record no longer exists, plus truly unbound tasks.
	leftover := []model.Task{}
	for _, rows := range byKey {
		leftover = append(leftover, rows...)
	}
	if len(leftover) > 0 {
		sort.SliceStable(leftover, func(i, j int) bool {
			return leftover[i].TaskName < leftover[j].TaskName
		})
		groups = append(groups, ReportGroup{ClientName: "Unassigned", Rows: toRows(leftover)})
	}

	return groups
}

func clientKey(id, name string) string {
	if id != "" {
		return "id:" + id
	}
	if name != "" {
		return "name:" + name
	}
	return ""
}

// taskClientKey buckets a task under whichever of its client references
// actually resolves to a client record, mirroring the id-or-name matching of
// the visibility filter. Unresolvable references keep their literal key and
// end up in the Unassigned group.
func taskClientKey(t model.Task, knownIDs, knownNames map[string]bool) string {
	switch {
	case t.ClientID != "" && knownIDs[t.ClientID]:
		return "id:" + t.ClientID
	case t.ClientName != "" && knownNames[t.ClientName]:
		return "name:" + t.ClientName
	}
	return clientKey(t.ClientID, t.ClientName)
}

func toRows(tasks []model.Task) []ReportRow {
	SortByDeadline(tasks)
	rows := make([]ReportRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, ReportRow{
			TaskName:      t.TaskName,
			Department:    t.Department,
			AssignedTo:    t.AssignedTo,
			Status:        t.Status,
			Deadline:      t.Deadline,
			RevisionCount: t.RevisionCount,
		})
	}
	return rows
}
