package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRouteTable(t *testing.T) {
	table := DefaultRouteTable()

	assert.Equal(t, []Group{GroupEntry, GroupDashboard}, table.GroupsFor("dashboard"))
	assert.Equal(t, []Group{GroupEntry}, table.GroupsFor("login"))
	assert.Equal(t, []Group{GroupEntry}, table.GroupsFor("userfirst"))
	assert.Empty(t, table.GroupsFor("other"))
	assert.Empty(t, table.GroupsFor(""))
}

func TestRouteTable_AddReplaces(t *testing.T) {
	table := NewRouteTable()
	table.Add("settings", GroupEntry)
	table.Add("settings", GroupEntry, GroupDashboard)

	assert.Equal(t, []Group{GroupEntry, GroupDashboard}, table.GroupsFor("settings"))
}
