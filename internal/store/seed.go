package store

// seedSQL is the studio's sample data set. It is loaded into every new
// database, so an in-memory store starts from the same state on each run.
const seedSQL = `
INSERT INTO clients (id, name, email, phone, company, balance, projects, status, created_at) VALUES
	(1, 'John Smith',    'john@acmecorp.com',        '+1 (555) 123-4567', 'Acme Corp',     15000, 2, 'active',   '2024-01-15'),
	(2, 'Sarah Johnson', 'sarah@techstart.com',      '+1 (555) 234-5678', 'TechStart Inc',  8500, 1, 'active',   '2024-02-20'),
	(3, 'Michael Brown', 'michael@designstudio.com', '+1 (555) 345-6789', 'Design Studio', 12000, 1, 'active',   '2024-03-10'),
	(4, 'Emily Davis',   'emily@startupxyz.com',     '+1 (555) 456-7890', 'StartupXYZ',        0, 1, 'inactive', '2023-12-05');

INSERT INTO projects (id, name, client, progress, hours, budget, spent, status) VALUES
	(1, 'Project Alpha', 'Acme Corp',     75,  120, 15000, 10200, 'active'),
	(2, 'Project Beta',  'TechStart Inc', 45,   80, 10000,  6000, 'active'),
	(3, 'Project Gamma', 'Design Studio', 90,  200, 25000, 16000, 'active'),
	(4, 'Project Delta', 'StartupXYZ',    100, 150, 18000, 18000, 'archived');

INSERT INTO work_types (project_id, id, name, color, hours, position) VALUES
	(1, 'coding',   'Coding',   '#3B82F6',  60, 0),
	(1, 'design',   'Design',   '#EF4444',  20, 1),
	(1, 'meetings', 'Meetings', '#F59E0B',  25, 2),
	(1, 'managing', 'Managing', '#10B981',  15, 3),
	(2, 'coding',   'Coding',   '#3B82F6',  40, 0),
	(2, 'design',   'Design',   '#EF4444',  15, 1),
	(2, 'meetings', 'Meetings', '#F59E0B',  15, 2),
	(2, 'managing', 'Managing', '#10B981',  10, 3),
	(3, 'coding',   'Coding',   '#3B82F6', 100, 0),
	(3, 'design',   'Design',   '#EF4444',  40, 1),
	(3, 'meetings', 'Meetings', '#F59E0B',  35, 2),
	(3, 'managing', 'Managing', '#10B981',  25, 3),
	(4, 'coding',   'Coding',   '#3B82F6',  80, 0),
	(4, 'design',   'Design',   '#EF4444',  30, 1),
	(4, 'meetings', 'Meetings', '#F59E0B',  25, 2),
	(4, 'managing', 'Managing', '#10B981',  15, 3);

INSERT INTO issues (id, project_id, title, status, assignee, estimate, actual_time, work_type, linear_id, created_at) VALUES
	('ISS-001', 1, 'Implement user authentication', 'done',        'John Doe',       8,  10,  'coding',   'LIN-123', '2024-01-10'),
	('ISS-002', 1, 'Design dashboard mockups',      'done',        'Jane Smith',     12, 11,  'design',   'LIN-124', '2024-01-12'),
	('ISS-003', 1, 'API integration for payments',  'in-progress', 'John Doe',       16, 8,   'coding',   'LIN-125', '2024-01-15'),
	('ISS-004', 1, 'Sprint planning meeting',       'done',        'Mike Johnson',   2,  2.5, 'meetings', '',        '2024-01-16'),
	('ISS-005', 2, 'Setup CI/CD pipeline',          'in-progress', 'Sarah Williams', 6,  4,   'coding',   'LIN-126', '2024-01-18'),
	('ISS-006', 2, 'Create brand guidelines',       'todo',        'Jane Smith',     8,  0,   'design',   '',        '2024-01-20'),
	('ISS-007', 3, 'Refactor legacy code',          'done',        'John Doe',       20, 22,  'coding',   'LIN-127', '2024-01-05'),
	('ISS-008', 3, 'Client feedback review',        'done',        'Mike Johnson',   3,  3,   'meetings', '',        '2024-01-22');

INSERT INTO team_members (id, name, initials, role, rate, rate_type, total_hours, salary) VALUES
	(1, 'John Doe',       'JD', 'Senior Developer',   85,   'hourly',  160, 13600),
	(2, 'Jane Smith',     'JS', 'UI/UX Designer',     75,   'hourly',  152, 11400),
	(3, 'Mike Johnson',   'MJ', 'Project Manager',    6000, 'monthly', 168, 6000),
	(4, 'Sarah Williams', 'SW', 'Frontend Developer', 70,   'hourly',  144, 10080);

INSERT INTO invoices (id, client, project, amount, date, due_date, status, include_in_finance) VALUES
	('INV-001', 'Acme Corp',     'Project Alpha', 15000, '2024-01-15', '2024-02-15', 'sent',    1),
	('INV-002', 'TechStart Inc', 'Project Beta',   8500, '2024-01-20', '2024-02-20', 'paid',    1),
	('INV-003', 'Design Studio', 'Project Gamma', 12000, '2024-01-25', '2024-02-25', 'draft',   0),
	('INV-004', 'StartupXYZ',    'Project Delta',  5000, '2023-12-10', '2024-01-10', 'overdue', 1);

INSERT INTO income (client, project, member, amount, date) VALUES
	('Acme Corp',     'Project Alpha', 'John Doe',     15000, '2024-01-15'),
	('TechStart Inc', 'Project Beta',  '',             10000, '2024-01-20'),
	('Design Studio', 'Project Gamma', 'Mike Johnson', 25000, '2024-01-25');

INSERT INTO expenses (category, amount, date, project, client, member) VALUES
	('Software Licenses', 2500, '2024-01-15', 'Project Alpha', '',          ''),
	('Office Rent',       3000, '2024-01-01', '',              '',          ''),
	('Equipment',         1200, '2024-01-10', '',              '',          'John Doe'),
	('Marketing',          800, '2024-01-20', '',              'Acme Corp', '');

INSERT INTO salaries (name, role, amount, status) VALUES
	('John Doe',       'Senior Developer',   13600, 'Paid'),
	('Jane Smith',     'UI/UX Designer',     11400, 'Paid'),
	('Mike Johnson',   'Project Manager',     6000, 'Pending'),
	('Sarah Williams', 'Frontend Developer', 10080, 'Paid');

INSERT INTO recurring_invoices (id, client, project, amount, frequency, next_due_date, status) VALUES
	('REC-INV-001', 'Acme Corp',     'Maintenance Plan', 2000, 'monthly',   '2024-02-01', 'active'),
	('REC-INV-002', 'TechStart Inc', 'Support Package',  5000, 'quarterly', '2024-03-15', 'active');

INSERT INTO recurring_expenses (id, category, amount, frequency, next_due_date, status) VALUES
	('REC-EXP-001', 'Office Rent',            3000, 'monthly', '2024-02-01', 'active'),
	('REC-EXP-002', 'Software Subscriptions',  500, 'monthly', '2024-02-05', 'active');

INSERT INTO project_time_entries (id, date, project_id, project_name, member_id, member_name, hours, description, issue_ids) VALUES
	(1, '2024-01-15', 1, 'Project Alpha', 1, 'John Doe',       8.5, 'Implemented user authentication', 'ISS-001'),
	(2, '2024-01-15', 1, 'Project Alpha', 1, 'John Doe',       2,   'Code review and bug fixes',       'ISS-003'),
	(3, '2024-01-15', 1, 'Project Alpha', 2, 'Jane Smith',     7.5, 'Dashboard mockups design',        'ISS-002'),
	(4, '2024-01-14', 2, 'Project Beta',  4, 'Sarah Williams', 6,   'CI/CD pipeline setup',            'ISS-005'),
	(5, '2024-01-14', 3, 'Project Gamma', 1, 'John Doe',       8,   'Legacy code refactoring',         'ISS-007'),
	(6, '2024-01-16', 1, 'Project Alpha', 3, 'Mike Johnson',   2.5, 'Sprint planning meeting',         'ISS-004'),
	(7, '2024-01-13', 2, 'Project Beta',  2, 'Jane Smith',     4,   'Brand guidelines research',       'ISS-006'),
	(8, '2024-01-12', 3, 'Project Gamma', 3, 'Mike Johnson',   3,   'Client feedback review',          'ISS-008');

INSERT INTO timesheet_entries (id, date, project, member, duration, description) VALUES
	(1, '2024-01-15', 'Project Alpha', 'John Doe',       '8h 30m', 'Frontend development'),
	(2, '2024-01-15', 'Project Beta',  'Jane Smith',     '7h 15m', 'UI design mockups'),
	(3, '2024-01-14', 'Project Gamma', 'Mike Johnson',   '6h 45m', 'Project planning'),
	(4, '2024-01-14', 'Project Alpha', 'Sarah Williams', '8h 00m', 'Component development');

INSERT INTO integrations (id, name, description, status, icon) VALUES
	(1, 'Linear',          'Sync projects and issues from Linear to track time and progress.',       'connected',    '📊'),
	(2, 'Slack',           'Get notifications and updates directly in your Slack workspace.',        'connected',    '💬'),
	(3, 'Stripe',          'Process payments and manage subscriptions with Stripe.',                 'disconnected', '💳'),
	(4, 'GitHub',          'Connect repositories and track commits for better project insights.',    'disconnected', '🐙'),
	(5, 'Google Calendar', 'Sync your schedule and time entries with Google Calendar.',              'disconnected', '📅'),
	(6, 'Notion',          'Export reports and sync project documentation with Notion.',             'disconnected', '📝');

INSERT OR IGNORE INTO settings (key, value) VALUES
	('studio_name',          'Onit Studio'),
	('currency',             'USD'),
	('time_format',          '24h'),
	('notifications',        'true'),
	('email_notifications',  'true'),
	('in_app_notifications', 'true'),
	('profile_name',         'John Doe'),
	('profile_email',        'john.doe@onit.com'),
	('profile_role',         'Senior Developer');
`
