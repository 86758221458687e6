package constants

// Built-in demo contracts for trying the extractor without uploading a file.
// "Custom Text" is not listed here: free text goes through the text endpoint.

const (
	DemoServiceAgreement   = "Service Agreement"
	DemoEmploymentContract = "Employment Contract"
	DemoNDA                = "NDA"
)

var demoOrder = []string{
	DemoServiceAgreement,
	DemoEmploymentContract,
	DemoNDA,
}

// DemoContractNames returns the demo names in display order.
func DemoContractNames() []string {
	out := make([]string, len(demoOrder))
	copy(out, demoOrder)
	return out
}

// DemoContract returns the contract text for a demo name.
func DemoContract(name string) (string, bool) {
	text, ok := demoContracts[name]
	return text, ok
}

var demoContracts = map[string]string{
	DemoServiceAgreement: `SERVICE AGREEMENT

This Service Agreement (the "Agreement") is entered into on January 15, 2024, between ABC Company ("Client") and XYZ Services ("Provider").

SECTION 1: SERVICES
Provider shall deliver consulting services to Client commencing February 1, 2024, and continuing for a period of 12 months. Provider must submit monthly progress reports by the 5th of each month.

SECTION 2: PAYMENT TERMS
Client shall pay Provider $10,000 per month, due within 30 days of invoice receipt. Late payments shall incur a 2% monthly penalty.

SECTION 3: CONFIDENTIALITY
Both parties must maintain strict confidentiality of all proprietary information shared during the term of this agreement and for 3 years thereafter.

SECTION 4: TERMINATION
Either party may terminate this agreement with 30 days written notice. Provider must complete all work in progress and deliver final deliverables within 14 days of termination.

SECTION 5: COMPLIANCE
Provider must comply with all applicable laws and regulations, including data protection requirements. Provider shall obtain necessary permits and licenses at their own expense.`,

	DemoEmploymentContract: `EMPLOYMENT AGREEMENT

This Employment Agreement is made between TechCorp Inc. ("Employer") and John Smith ("Employee") effective March 1, 2024.

SECTION 1: POSITION AND DUTIES
Employee shall serve as Senior Software Engineer and report to the CTO. Employee must work 40 hours per week and attend all mandatory meetings.

SECTION 2: COMPENSATION
Employer shall pay Employee an annual salary of $120,000, payable bi-weekly. Employee is eligible for annual performance bonuses up to 20% of base salary.

SECTION 3: BENEFITS
Employee shall receive health insurance, 401(k) matching, and 20 days of paid time off annually. Employee must submit PTO requests at least 2 weeks in advance.

SECTION 4: INTELLECTUAL PROPERTY
Employee must assign all inventions and intellectual property created during employment to Employer. Employee shall sign all necessary documents to perfect such assignments.

SECTION 5: NON-COMPETE
Employee shall not work for competitors or solicit Employer's clients for 12 months after termination. Employee must return all company property within 7 days of termination.`,

	DemoNDA: `NON-DISCLOSURE AGREEMENT

This Non-Disclosure Agreement is entered into between StartupXYZ ("Disclosing Party") and InvestorABC ("Receiving Party") on April 10, 2024.

SECTION 1: CONFIDENTIAL INFORMATION
Receiving Party shall maintain strict confidentiality of all proprietary information, trade secrets, and business plans disclosed by Disclosing Party.

SECTION 2: USE RESTRICTIONS
Receiving Party may only use confidential information for evaluation purposes and must not disclose it to any third parties without prior written consent.

SECTION 3: SECURITY MEASURES
Receiving Party must implement reasonable security measures to protect confidential information and limit access to authorized personnel only.

SECTION 4: RETURN OF MATERIALS
Upon request or termination of discussions, Receiving Party must return or destroy all confidential materials within 10 business days.

SECTION 5: DURATION
This agreement remains in effect for 5 years from the date of disclosure, regardless of whether a business relationship is established.`,
}
