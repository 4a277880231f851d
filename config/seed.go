package config

import (
	"gorm.io/gorm"

	"github.com/ctb-platform/team-server/models"
)

// Reference data: the global permission catalog and the predefined role
// templates. Template ids are fixed because team creation selects them by
// category range (admin 1-3, business 4-6, hacker 7-10).

type seedPermission struct {
	ID          uint
	Name        string
	Description string
}

var permissionCatalog = []seedPermission{
	{1, "view_team", "View team profile and member list"},
	{2, "edit_team", "Edit team name and description"},
	{3, "delete_team", "Delete the team and all of its data"},
	{4, "manage_roles", "Create and delete team roles"},
	{5, "manage_permissions", "Attach and detach role permissions"},
	{6, "invite_members", "Invite new members by email"},
	{7, "remove_members", "Remove members from the team"},
	{8, "assign_roles", "Change a member's team role"},
	{9, "view_programs", "View published programs"},
	{10, "manage_programs", "Create and edit programs"},
	{11, "submit_reports", "Submit reports to a program"},
	{12, "triage_reports", "Triage and update report status"},
	{13, "view_reports", "View report details"},
}

type seedRole struct {
	ID          uint
	Name        string
	Description string
	Permissions []uint
}

var predefinedRoles = []seedRole{
	// admin category
	{1, "Platform Owner", "Full control over the team", []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}},
	{2, "Platform Admin", "Administers roles, members and programs", []uint{1, 2, 4, 5, 6, 7, 8, 9, 10, 12, 13}},
	{3, "Platform Moderator", "Reviews programs and reports", []uint{1, 9, 12, 13}},
	// business category
	{4, "Business Owner", "Full control over the business team", []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 13}},
	{5, "Program Manager", "Runs programs and triages incoming reports", []uint{1, 6, 9, 10, 12, 13}},
	{6, "Analyst", "Read-only access to programs and reports", []uint{1, 9, 13}},
	// hacker category
	{7, "Team Leader", "Full control over the hacker team", []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 13}},
	{8, "Senior Hacker", "Submits reports and mentors members", []uint{1, 9, 11, 13}},
	{9, "Hacker", "Submits reports", []uint{1, 9, 11}},
	{10, "Observer", "Read-only team member", []uint{1, 9}},
}

// SeedReferenceData inserts the permission catalog and the predefined role
// templates if they are not present yet. Safe to run on every startup.
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, p := range permissionCatalog {
			desc := p.Description
			row := models.Permission{ID: p.ID, Name: p.Name, Description: &desc}
			if err := tx.Where(models.Permission{ID: p.ID}).FirstOrCreate(&row).Error; err != nil {
				return err
			}
		}

		for _, r := range predefinedRoles {
			desc := r.Description
			row := models.PredefinedRole{ID: r.ID, Name: r.Name, Description: &desc}
			if err := tx.Where(models.PredefinedRole{ID: r.ID}).FirstOrCreate(&row).Error; err != nil {
				return err
			}

			for _, permID := range r.Permissions {
				binding := models.PredefinedRolePermission{PredefinedRoleID: r.ID, PermissionID: permID}
				err := tx.Where(models.PredefinedRolePermission{PredefinedRoleID: r.ID, PermissionID: permID}).
					FirstOrCreate(&binding).Error
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
}
