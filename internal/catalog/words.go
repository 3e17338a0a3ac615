package catalog

import "github.com/example/legame/pkg/models"

func m(english, french string) models.Word {
	return models.Word{EnglishWord: english, FrenchWord: french, Gender: models.Masculine}
}

func f(english, french string) models.Word {
	return models.Word{EnglishWord: english, FrenchWord: french, Gender: models.Feminine}
}

var lists = map[Category][]models.Word{
	Basic: {
		m("Time", "Le temps"),
		f("Year", "L'année"),
		m("Day", "Le jour"),
		f("Thing", "La chose"),
		m("Man", "L'homme"),
		m("World", "Le monde"),
		f("Life", "La vie"),
		f("Hand", "La main"),
		f("Part", "La partie"),
		m("Child", "L'enfant"),
		m("Eye", "L'œil"),
		f("Woman", "La femme"),
		m("Place", "L'endroit"),
		m("Work", "Le travail"),
		f("Week", "La semaine"),
		m("Case", "Le cas"),
		m("Point", "Le point"),
		m("Government", "Le gouvernement"),
		f("Company", "L'entreprise"),
		m("Number", "Le nombre"),
		m("Group", "Le groupe"),
		m("Problem", "Le problème"),
		m("Fact", "Le fait"),
		m("Money", "L'argent"),
		m("Month", "Le mois"),
		m("Right", "Le droit"),
		f("Study", "L'étude"),
		m("Book", "Le livre"),
		m("Job", "L'emploi"),
		f("Night", "La nuit"),
		m("Word", "Le mot"),
		m("Example", "L'exemple"),
		f("Family", "La famille"),
		m("Country", "Le pays"),
		f("Question", "La question"),
		f("School", "L'école"),
		m("State", "L'état"),
		m("Student", "L'étudiant"),
		m("Program", "Le programme"),
		f("Minute", "La minute"),
		m("Good", "Le bien"),
		f("Hour", "L'heure"),
		m("Guy", "Le type"),
		m("Moment", "Le moment"),
		m("Teacher", "Le professeur"),
		m("Issue", "Le problème"),
		m("Kind", "Le genre"),
		f("Head", "La tête"),
		f("House", "La maison"),
		m("Service", "Le service"),
	},
	Common: {
		f("House", "La maison"),
		f("Car", "La voiture"),
		m("Book", "Le livre"),
		f("Table", "La table"),
		f("Chair", "La chaise"),
		m("Bread", "Le pain"),
		f("Water", "L'eau"),
		f("Door", "La porte"),
		f("Window", "La fenêtre"),
		m("Phone", "Le téléphone"),
		f("City", "La ville"),
		f("Street", "La rue"),
		m("Friend", "L'ami"),
		m("Cheese", "Le fromage"),
		f("Apple", "La pomme"),
		m("Coffee", "Le café"),
		f("Key", "La clé"),
		m("Bed", "Le lit"),
		f("Kitchen", "La cuisine"),
		m("Train", "Le train"),
	},
	Family: {
		f("Mother", "La mère"),
		m("Father", "Le père"),
		m("Brother", "Le frère"),
		f("Sister", "La sœur"),
		m("Son", "Le fils"),
		f("Daughter", "La fille"),
		m("Uncle", "L'oncle"),
		f("Aunt", "La tante"),
		m("Grandfather", "Le grand-père"),
		f("Grandmother", "La grand-mère"),
		m("Husband", "Le mari"),
		f("Wife", "L'épouse"),
		m("Nephew", "Le neveu"),
		f("Niece", "La nièce"),
		m("Baby", "Le bébé"),
		f("Family", "La famille"),
	},
	Anatomy: {
		f("Head", "La tête"),
		f("Hand", "La main"),
		m("Eye", "L'œil"),
		m("Arm", "Le bras"),
		f("Leg", "La jambe"),
		m("Foot", "Le pied"),
		m("Nose", "Le nez"),
		f("Mouth", "La bouche"),
		f("Ear", "L'oreille"),
		m("Heart", "Le cœur"),
		m("Back", "Le dos"),
		m("Neck", "Le cou"),
		f("Shoulder", "L'épaule"),
		m("Knee", "Le genou"),
		f("Tooth", "La dent"),
		f("Tongue", "La langue"),
		f("Skin", "La peau"),
		m("Stomach", "L'estomac"),
		m("Finger", "Le doigt"),
		m("Blood", "Le sang"),
	},
	Advanced: {
		f("Democracy", "La démocratie"),
		m("Environment", "L'environnement"),
		f("Philosophy", "La philosophie"),
		f("Knowledge", "La connaissance"),
		f("Society", "La société"),
		m("Behaviour", "Le comportement"),
		f("Freedom", "La liberté"),
		m("Development", "Le développement"),
		f("Research", "La recherche"),
		m("Agreement", "L'accord"),
		f("Threat", "La menace"),
		f("Policy", "La politique"),
		f("Law", "La loi"),
		m("Power", "Le pouvoir"),
		f("Awareness", "La prise de conscience"),
	},
}
