package entity

type IssueStatistics struct {
	Total      int
	ByStatus   map[IssueStatus]int
	ByPriority map[IssuePriority]int
}

// NewIssueStatistics считает статистику по уже загруженным задачам
func NewIssueStatistics(issues []Issue) IssueStatistics {
	stats := IssueStatistics{
		ByStatus:   make(map[IssueStatus]int, len(IssueStatuses)),
		ByPriority: make(map[IssuePriority]int, len(IssuePriorities)),
	}
	for _, s := range IssueStatuses {
		stats.ByStatus[s] = 0
	}
	for _, p := range IssuePriorities {
		stats.ByPriority[p] = 0
	}
	for _, issue := range issues {
		stats.Total++
		stats.ByStatus[issue.Status]++
		stats.ByPriority[issue.Priority]++
	}
	return stats
}

// Dashboard сводка для главной страницы пользователя
type Dashboard struct {
	OwnedProjects  int
	SharedProjects int
	Teams          int
	Issues         IssueStatistics
}

// IssueOverview последние задачи пользователя вместе со счетчиками
type IssueOverview struct {
	Recent     []Issue
	Statistics IssueStatistics
}
