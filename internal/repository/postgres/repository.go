package postgres

import "github.com/DB3NJ4/StackFlow/internal/repository"

var (
	_ repository.ProjectRepository     = (*ProjectRepository)(nil)
	_ repository.TeamRepository        = (*TeamRepository)(nil)
	_ repository.TeamMemberRepository  = (*TeamMemberRepository)(nil)
	_ repository.ProjectTeamRepository = (*ProjectTeamRepository)(nil)
	_ repository.IssueRepository       = (*IssueRepository)(nil)
	_ repository.ProfileRepository     = (*ProfileRepository)(nil)
	_ repository.StatisticsRepository  = (*StatisticsRepository)(nil)
	_ repository.TransactionManager    = (*TransactionManager)(nil)
)
