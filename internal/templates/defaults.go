package templates

// Template names used by the handlers.
const (
	CommWelcomeEmail        = "comm_welcome_email"
	CommAppointmentReminder = "comm_appointment_reminder"
	CommDocumentRequest     = "comm_document_request"
	CommCaseUpdate          = "comm_case_update"
	CommInvoice             = "comm_invoice"
	CommThankYou            = "comm_thank_you"
	ContractBase            = "contract_base"
)

// CommData is the interpolation payload for client communications.
type CommData struct {
	Recipient     string
	Matter        string
	CaseDetails   bool
	PersonalTouch bool
	NextSteps     bool
}

// ContractData is the interpolation payload for generated agreements.
type ContractData struct {
	Type         string
	TypeUpper    string
	Party1       string
	Party2       string
	Jurisdiction string
	SpecialTerms string
}

var defaults = map[string]string{
	CommWelcomeEmail: `Subject: Welcome to [Law Firm Name] - We're Here to Help

Dear {{.Recipient}},

Thank you for choosing [Law Firm Name] to represent you. We understand that legal matters can be stressful, and we're committed to providing you with exceptional service and support throughout your case.
{{if and .CaseDetails .Matter}}
Your {{.Matter}} matter is important to us, and we'll work diligently to achieve the best possible outcome.
{{end}}
Next Steps:
1. Complete the attached intake forms
2. Gather the requested documents
3. Attend your scheduled consultation on [DATE]
{{if .PersonalTouch}}
We look forward to getting to know you better and understanding your unique situation.
{{end}}{{if .NextSteps}}
Please don't hesitate to contact us if you have any questions. Your consultation is scheduled for [DATE] at [TIME].
{{end}}
Best regards,
[Attorney Name]
[Law Firm Name]
`,
	CommAppointmentReminder: `Subject: Reminder: Your Appointment Tomorrow at [TIME]

Dear {{.Recipient}},

This is a friendly reminder about your appointment tomorrow at [TIME] at our office.
{{if and .CaseDetails .Matter}}
We'll be discussing your {{.Matter}} during this meeting.
{{end}}
Please bring:
- Photo ID
- Any relevant documents
- List of questions you may have
{{if .PersonalTouch}}
We're looking forward to meeting with you and helping you move forward.
{{end}}
If you need to reschedule, please call us at [PHONE] as soon as possible.

See you tomorrow!

[Law Firm Name]
`,
	CommDocumentRequest: `Subject: Documents Needed for Your Case

Dear {{.Recipient}},

To keep your case moving forward, we need the following documents from you:

1. Photo ID
2. Relevant contracts or agreements
3. Communication records related to the matter
4. Financial documents (if applicable)
{{if and .CaseDetails .Matter}}
These documents relate to your {{.Matter}} and will help us prepare the strongest possible position.
{{end}}{{if .NextSteps}}
Please upload them to your client portal or bring them to your next appointment.
{{end}}{{if .PersonalTouch}}
Thank you for your cooperation - we know gathering paperwork is never fun.
{{end}}
Best regards,
[Law Firm Name]
`,
	CommCaseUpdate: `Subject: Update on Your Case

Dear {{.Recipient}},

We wanted to share a progress update on your matter.
{{if and .CaseDetails .Matter}}
Your {{.Matter}} has moved to the next stage of the process. We have completed the initial review and are preparing the necessary filings.
{{end}}{{if .NextSteps}}
Next steps:
1. We will file the prepared documents this week
2. You will receive copies for your records
3. We will schedule a call to discuss the expected timeline
{{end}}{{if .PersonalTouch}}
As always, don't hesitate to reach out with any questions - we're here for you.
{{end}}
Best regards,
[Attorney Name]
[Law Firm Name]
`,
	CommInvoice: `Subject: Invoice for Legal Services

Dear {{.Recipient}},

Please find attached the invoice for legal services rendered this billing period.
{{if and .CaseDetails .Matter}}
Services relate to your {{.Matter}}.
{{end}}
Payment is due within 30 days. You can pay online through your client portal or by check.
{{if .NextSteps}}
If you have questions about any line item, contact our billing department at [PHONE].
{{end}}{{if .PersonalTouch}}
Thank you for trusting us with your legal needs.
{{end}}
Best regards,
[Law Firm Name]
`,
	CommThankYou: `Subject: Thank You from [Law Firm Name]

Dear {{.Recipient}},

Thank you for allowing us to represent you. It has been a privilege to work on your behalf.
{{if and .CaseDetails .Matter}}
We're pleased with the resolution of your {{.Matter}} and hope you are as well.
{{end}}{{if .PersonalTouch}}
Clients like you are the reason we do this work.
{{end}}{{if .NextSteps}}
If you ever need legal assistance in the future, we're only a phone call away. Referrals are always appreciated.
{{end}}
Warm regards,
[Attorney Name]
[Law Firm Name]
`,
	ContractBase: `{{.TypeUpper}}

This {{.Type}} ("Agreement") is entered into as of [DATE], by and between:

{{.Party1}} ("First Party")
and
{{.Party2}} ("Second Party")

WHEREAS, the parties desire to enter into this Agreement on the terms and conditions set forth herein;

NOW, THEREFORE, in consideration of the mutual covenants and agreements contained herein, and for other good and valuable consideration, the receipt and sufficiency of which are hereby acknowledged, the parties agree as follows:

1. SCOPE OF AGREEMENT
   [Specific terms based on contract type]

2. TERM
   This Agreement shall commence on [DATE] and continue until [TERMINATION CONDITIONS].

3. COMPENSATION
   [Payment terms and conditions]

4. CONFIDENTIALITY
   Both parties agree to maintain the confidentiality of any proprietary information.

5. GOVERNING LAW
   This Agreement shall be governed by the laws of {{.Jurisdiction}}.
{{if .SpecialTerms}}
6. SPECIAL TERMS
   {{.SpecialTerms}}
{{end}}
IN WITNESS WHEREOF, the parties have executed this Agreement as of the date first above written.

_______________________        _______________________
{{.Party1}}                       {{.Party2}}
Date: _______                  Date: _______
`,
}
