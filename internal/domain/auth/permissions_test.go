package auth

import "testing"

func TestAdminAllowedEverything(t *testing.T) {
	ops := []Operation{OpViewRecords, OpExport, OpManageRecords, OpBulkData, OpManageUsers, OpViewAudit}
	for _, op := range ops {
		if !Allowed(RoleAdmin, op) {
			t.Fatalf("Admin should be allowed %s", op)
		}
	}
}

func TestSupervisorViewAndExportOnly(t *testing.T) {
	if !Allowed(RoleSupervisor, OpViewRecords) || !Allowed(RoleSupervisor, OpExport) {
		t.Fatal("Supervisor should view and export")
	}
	for _, op := range []Operation{OpManageRecords, OpBulkData, OpManageUsers, OpViewAudit} {
		if Allowed(RoleSupervisor, op) {
			t.Fatalf("Supervisor should be denied %s", op)
		}
	}
}

func TestUserViewOnly(t *testing.T) {
	if !Allowed(RoleUser, OpViewRecords) {
		t.Fatal("User should view records")
	}
	for _, op := range []Operation{OpExport, OpManageRecords, OpBulkData, OpManageUsers, OpViewAudit} {
		if Allowed(RoleUser, op) {
			t.Fatalf("User should be denied %s", op)
		}
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	if Allowed("Root", OpViewRecords) {
		t.Fatal("unknown role must be denied")
	}
	if ValidRole("Root") {
		t.Fatal("Root is not a known role")
	}
}
