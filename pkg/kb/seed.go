package kb

import (
	"time"

	"github.com/opsdesk/kbase/pkg/types"
)

// Seed data written the first time each key is found absent. The fixed
// short IDs stay stable across reinstalls so the sample entries keep
// referencing the sample categories.

func seedUsers() []types.User {
	return []types.User{
		{
			ID:       "admin-1",
			Name:     "System Administrator",
			Username: "admin",
			Password: "123",
			Role:     types.RoleAdmin,
		},
		{
			ID:       "user-1",
			Name:     "John Doe",
			Username: "user",
			Password: "123",
			Role:     types.RoleUser,
		},
	}
}

func seedCategories() []types.Category {
	return []types.Category{
		{ID: "1", Name: "Hardware Support"},
		{ID: "2", Name: "Software Installation"},
		{ID: "3", Name: "Network & Connectivity"},
		{ID: "4", Name: "Security Policies"},
	}
}

func seedEntries() []types.Entry {
	now := time.Now()
	return []types.Entry{
		{
			ID:         "101",
			Title:      "How to configure VPN for remote access",
			Content:    "<ol><li>Open the VPN client.</li><li>Enter the gateway address: <strong>vpn.example.com</strong></li><li>Use your corporate credentials.</li><li>Approve the MFA request via the authenticator app.</li></ol><p>If you encounter connection issues, ensure your network password has not expired.</p>",
			CategoryID: "3",
			AuthorName: "SysAdmin",
			CreatedAt:  now.AddDate(0, 0, -2),
			Views:      124,
		},
		{
			ID:         "102",
			Title:      "Printer Setup (Floor 3)",
			Content:    "<p>The printer on Floor 3 IP address is <strong>192.168.1.50</strong>.</p><p>To install:</p><ul><li>Open File Explorer.</li><li>Navigate to <code>\\\\printserv\\floor3</code>.</li><li>Double click the printer icon to install drivers automatically.</li></ul>",
			CategoryID: "1",
			AuthorName: "HelpDesk",
			CreatedAt:  now.AddDate(0, 0, -5),
			Views:      45,
		},
	}
}
