package trivia

// Question pairs a prompt with its accepted answer.
type Question struct {
	Prompt string
	Answer string
}

var catalog = []Question{
	{"What is the capital of France?", "Paris"},
	{"Who wrote 'To Kill a Mockingbird'?", "Harper Lee"},
	{"What planet is known as the Red Planet?", "Mars"},
	{"What is the largest mammal?", "Blue whale"},
	{"In which year did the Titanic sink?", "1912"},
	{"What is the smallest country in the world?", "Vatican City"},
	{"Who painted the Mona Lisa?", "Leonardo da Vinci"},
	{"What is the longest river in the world?", "Amazon River"},
	{"Which country is known as the Land of the Rising Sun?", "Japan"},
	{"Who was the first president of the United States?", "George Washington"},
	{"What is the hardest natural substance on Earth?", "Diamond"},
	{"Which element has the chemical symbol 'O'?", "Oxygen"},
	{"What is the capital of Australia?", "Canberra"},
	{"Which ocean is the largest?", "Pacific Ocean"},
	{"In which year did World War II end?", "1945"},
	{"Who developed the theory of relativity?", "Albert Einstein"},
	{"What is the name of the first man to walk on the moon?", "Neil Armstrong"},
	{"What is the tallest mountain in the world?", "Mount Everest"},
	{"Which animal is known as the King of the Jungle?", "Lion"},
	{"Which planet is closest to the sun?", "Mercury"},
	{"What is the longest bone in the human body?", "Femur"},
	{"Who wrote 'Romeo and Juliet'?", "William Shakespeare"},
	{"What is the capital of Japan?", "Tokyo"},
	{"Which country invented the pizza?", "Italy"},
	{"What is the largest desert in the world?", "Sahara Desert"},
	{"In what year did the first manned moon landing take place?", "1969"},
	{"Who discovered penicillin?", "Alexander Fleming"},
	{"Which country is the largest by land area?", "Russia"},
	{"What is the national flower of Japan?", "Cherry Blossom"},
	{"Who was the first woman to win a Nobel Prize?", "Marie Curie"},
	{"What is the chemical symbol for gold?", "Au"},
	{"Which planet is known for its rings?", "Saturn"},
	{"What is the main ingredient in guacamole?", "Avocado"},
	{"Which ocean separates the United States from Europe?", "Atlantic Ocean"},
	{"Which famous scientist developed the laws of motion?", "Isaac Newton"},
	{"Who painted the Sistine Chapel ceiling?", "Michelangelo"},
	{"What year did the Berlin Wall fall?", "1989"},
	{"What is the world's most widely spoken language?", "Mandarin Chinese"},
	{"Who is the author of the Harry Potter series?", "J.K. Rowling"},
	{"Which animal can be seen on the Porsche logo?", "Horse"},
	{"What is the capital of Canada?", "Ottawa"},
	{"What is the world's largest island?", "Greenland"},
	{"Which famous ship sank on its maiden voyage in 1912?", "Titanic"},
	{"Which country is known as the 'Land of the Midnight Sun'?", "Norway"},
	{"What element is represented by the symbol 'Na'?", "Sodium"},
	{"What is the tallest building in the world?", "Burj Khalifa"},
	{"Which continent is the Sahara Desert located on?", "Africa"},
	{"Which chemical element has the atomic number 1?", "Hydrogen"},
	{"What is the name of the fairy in Peter Pan?", "Tinker Bell"},
	{"What is the smallest bone in the human body?", "Stapes"},
	{"Who was the first woman to fly solo across the Atlantic Ocean?", "Amelia Earhart"},
	{"What is the most common blood type?", "O positive"},
	{"Which city is known as the Big Apple?", "New York City"},
	{"Which country is known as the birthplace of democracy?", "Greece"},
	{"Which animal is the largest land mammal?", "Elephant"},
	{"What is the capital of Egypt?", "Cairo"},
	{"Who invented the lightbulb?", "Thomas Edison"},
	{"In what year did the first iPhone launch?", "2007"},
	{"What is the largest volcano in the world?", "Mauna Loa"},
	{"Which planet is known as the 'Giant Planet'?", "Jupiter"},
	{"Which sea is the saltiest?", "Dead Sea"},
	{"Who was the first emperor of China?", "Qin Shi Huang"},
	{"What is the capital of Italy?", "Rome"},
	{"Who was the first female Prime Minister of the United Kingdom?", "Margaret Thatcher"},
	{"Which country has the most pyramids?", "Sudan"},
	{"What is the capital of Brazil?", "Brasília"},
	{"Which country is home to the Great Barrier Reef?", "Australia"},
	{"Which sport is known as 'the king of sports'?", "Soccer"},
	{"Who was the first African-American president of the United States?", "Barack Obama"},
	{"What is the tallest waterfall in the world?", "Angel Falls"},
	{"Which city is famous for its canals and gondolas?", "Venice"},
	{"Which country is known as the Land of Ice and Fire?", "Iceland"},
	{"Which country has the most official languages?", "South Africa"},
	{"What is the capital of Spain?", "Madrid"},
	{"What is the world's largest coral reef system?", "Great Barrier Reef"},
	{"What is the national sport of Canada?", "Hockey"},
	{"Who was the first man to climb Mount Everest?", "Sir Edmund Hillary"},
	{"Which country is known for the invention of paper?", "China"},
	{"What is the main ingredient of tofu?", "Soybeans"},
	{"Who was the first person to reach the South Pole?", "Roald Amundsen"},
	{"What is the smallest planet in our solar system?", "Mercury"},
	{"Which bird is known for its colorful feathers and mimicking sounds?", "Parrot"},
	{"Who discovered America?", "Christopher Columbus"},
	{"What is the capital of Mexico?", "Mexico City"},
	{"What does the acronym 'HTML' stand for?", "HyperText Markup Language"},
	{"Which fruit has its seeds on the outside?", "Strawberry"},
	{"What is the symbol for the chemical element carbon?", "C"},
	{"What animal is featured in the logo of Ferrari?", "Horse"},
	{"What is the largest country in Africa?", "Algeria"},
	{"What is the national animal of Canada?", "Beaver"},
	{"Who wrote 'Pride and Prejudice'?", "Jane Austen"},
	{"Which country is famous for sushi?", "Japan"},
	{"What is the highest recorded temperature on Earth?", "134°F (56.7°C)"},
	{"What is the currency of the United Kingdom?", "Pound Sterling"},
	{"What is the capital of India?", "New Delhi"},
	{"Which planet is known as the Morning Star?", "Venus"},
	{"Which element is represented by the symbol 'Fe'?", "Iron"},
	{"What is the only continent without a desert?", "Europe"},
	{"Who is known as the 'Father of Modern Physics'?", "Albert Einstein"},
	{"Which country is the largest producer of coffee?", "Brazil"},
	{"Which fruit is known as the king of fruits?", "Durian"},
	{"What is the name of the largest moon of Saturn?", "Titan"},
	{"Which American president issued the Emancipation Proclamation?", "Abraham Lincoln"},
	{"What is the capital of South Korea?", "Seoul"},
	{"Which country is famous for its ancient pyramids?", "Egypt"},
}
