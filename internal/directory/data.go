// internal/directory/data.go
package directory

import "vitalis-server/internal/models"

var specialties = []models.Specialty{
	{
		ID:              "cardiology",
		Name:            "Cardiology",
		Icon:            "HeartPulse",
		Description:     "Expert care for your heart and vascular system.",
		LongDescription: "Our Cardiology department is equipped with state-of-the-art technology to diagnose and treat a wide range of cardiovascular conditions. From preventive screenings to complex interventional procedures, our team of experts is dedicated to your heart health.",
		Symptoms:        []string{"Chest pain", "Shortness of breath", "Palpitations", "Dizziness", "High blood pressure"},
		Procedures:      []string{"Echocardiogram", "Stress Testing", "Cardiac Catheterization", "Angioplasty", "Pacemaker Implantation"},
	},
	{
		ID:              "neurology",
		Name:            "Neurology",
		Icon:            "Brain",
		Description:     "Advanced diagnosis and treatment for brain and spine disorders.",
		LongDescription: "The Neurology department provides comprehensive care for patients with disorders of the nervous system. We use advanced neuro-imaging and diagnostic tools to manage conditions ranging from headaches to complex neurological diseases.",
		Symptoms:        []string{"Frequent headaches", "Seizures", "Memory loss", "Muscle weakness", "Numbness or tingling"},
		Procedures:      []string{"EEG", "EMG", "MRI/CT Scans", "Sleep Studies", "Lumbar Puncture"},
	},
	{
		ID:              "orthopedics",
		Name:            "Orthopedics",
		Icon:            "Bone",
		Description:     "Comprehensive bone, joint, and muscle care.",
		LongDescription: "Our Orthopedic specialists provide expert care for musculoskeletal injuries and conditions. Whether you are an athlete with a sports injury or suffering from chronic joint pain, we offer both surgical and non-surgical solutions to get you back to your active life.",
		Symptoms:        []string{"Joint pain", "Back or neck pain", "Sports injuries", "Fractures", "Limited range of motion"},
		Procedures:      []string{"Joint Replacement", "Arthroscopy", "Spine Surgery", "Physical Therapy", "Fracture Repair"},
	},
	{
		ID:              "pediatrics",
		Name:            "Pediatrics",
		Icon:            "Baby",
		Description:     "Specialized healthcare for infants, children, and adolescents.",
		LongDescription: "Vitalis Pediatrics offers a warm and welcoming environment for your child's healthcare needs. From newborn care to adolescent medicine, our pediatricians are dedicated to supporting your child's growth and development at every stage.",
		Symptoms:        []string{"Fever", "Developmental delays", "Common childhood illnesses", "Behavioral concerns", "Growth issues"},
		Procedures:      []string{"Well-child Visits", "Immunizations", "Developmental Screenings", "School Physicals", "Asthma Management"},
	},
	{
		ID:              "oncology",
		Name:            "Oncology",
		Icon:            "Dna",
		Description:     "Compassionate cancer care with cutting-edge technology.",
		LongDescription: "Our Oncology center provides a multidisciplinary approach to cancer treatment. We combine advanced therapies with compassionate support services to provide personalized care for every patient on their journey to recovery.",
		Symptoms:        []string{"Unexplained weight loss", "Persistent fatigue", "Lumps or skin changes", "Chronic pain", "Changes in bowel/bladder habits"},
		Procedures:      []string{"Chemotherapy", "Radiation Therapy", "Immunotherapy", "Biopsy", "Genetic Counseling"},
	},
	{
		ID:              "gastroenterology",
		Name:            "Gastroenterology",
		Icon:            "Stethoscope",
		Description:     "Treatment for digestive system and liver disorders.",
		LongDescription: "The Gastroenterology department specializes in the prevention, diagnosis, and treatment of digestive tract and liver diseases. Our specialists use the latest endoscopic techniques to provide accurate diagnoses and effective treatments.",
		Symptoms:        []string{"Abdominal pain", "Acid reflux", "Chronic constipation/diarrhea", "Bloating", "Jaundice"},
		Procedures:      []string{"Colonoscopy", "Endoscopy (EGD)", "Liver Biopsy", "ERCP", "Capsule Endoscopy"},
	},
}

var doctors = []models.Doctor{
	{
		ID:           "1",
		Name:         "Dr. Sarah Johnson",
		Specialty:    "Cardiology",
		Experience:   "15+ Years",
		Education:    "MD, FACC",
		Image:        "https://images.unsplash.com/photo-1559839734-2b71f153678f?auto=format&fit=crop&q=80&w=800&h=1000",
		Bio:          "Dr. Sarah Johnson is a world-renowned cardiologist with over 15 years of experience in treating complex heart conditions. She specializes in interventional cardiology and has performed thousands of successful procedures.",
		Rating:       4.9,
		Reviews:      124,
		Availability: []string{"Mon", "Wed", "Fri"},
	},
	{
		ID:           "2",
		Name:         "Dr. Michael Chen",
		Specialty:    "Neurology",
		Experience:   "12+ Years",
		Education:    "MD, PhD",
		Image:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&q=80&w=800&h=1000",
		Rating:       4.8,
		Reviews:      89,
		Availability: []string{"Tue", "Thu", "Sat"},
	},
	{
		ID:           "3",
		Name:         "Dr. Emily Rodriguez",
		Specialty:    "Pediatrics",
		Experience:   "10+ Years",
		Education:    "MD, FAAP",
		Image:        "https://images.unsplash.com/photo-1594824476967-48c8b964273f?auto=format&fit=crop&q=80&w=800&h=1000",
		Rating:       4.9,
		Reviews:      156,
		Availability: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
	},
	{
		ID:           "4",
		Name:         "Dr. James Wilson",
		Specialty:    "Orthopedics",
		Experience:   "20+ Years",
		Education:    "MD, FAAOS",
		Image:        "https://images.unsplash.com/photo-1622253692010-333f2da6031d?auto=format&fit=crop&q=80&w=800&h=1000",
		Rating:       4.7,
		Reviews:      210,
		Availability: []string{"Mon", "Wed", "Thu"},
	},
}
